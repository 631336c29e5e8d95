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

// Package serializer moves structured values in and out of JSON, YAML and
// plain-text tables.
//
// Writers serialize to stdout or a file:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, recipes); err != nil {
//	    return err
//	}
//
// Values implementing Tabular are rendered as columns in table format. Any
// other value is flattened into dotted FIELD/VALUE rows.
//
// Readers decode JSON or YAML from local files or HTTP/HTTPS URLs, with the
// format taken from the file extension:
//
//	cfg, err := serializer.FromFile[Settings]("rf.yaml")
//
// HttpReader is the shared upstream HTTP client with connection, TLS and
// total timeouts, and RespondJSON writes JSON API responses.
package serializer
