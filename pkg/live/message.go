// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package live

import (
	"github.com/mchmarny/recipe-finder/pkg/search"
)

// Message types sent by the client.
const (
	TypeKeystroke = "keystroke"
	TypeSubmit    = "submit"
	TypeCategory  = "category"
	TypeNavigate  = "navigate"
	TypeClear     = "clear"
	TypeRetry     = "retry"
)

// Message types sent by the server. TypeNavigate is shared: the server asks
// the client to navigate, the client reports the navigation back.
const (
	TypeView  = "view"
	TypeError = "error"
)

// Inbound is a message from the client.
type Inbound struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	Name     string `json:"name,omitempty"`
	Search   string `json:"search,omitempty"`
	Category string `json:"category,omitempty"`
}

// Params returns the navigation parameters carried by a navigate message.
func (m Inbound) Params() search.Params {
	return search.Params{Search: m.Search, Category: m.Category}
}

// Outbound is a message to the client.
type Outbound struct {
	Type   string         `json:"type"`
	View   *search.View   `json:"view,omitempty"`
	URL    string         `json:"url,omitempty"`
	Params *search.Params `json:"params,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func viewMessage(v search.View) Outbound {
	return Outbound{Type: TypeView, View: &v}
}

func navigateMessage(p search.Params) Outbound {
	return Outbound{Type: TypeNavigate, URL: p.URL(), Params: &p}
}

func errorMessage(msg string) Outbound {
	return Outbound{Type: TypeError, Error: msg}
}
