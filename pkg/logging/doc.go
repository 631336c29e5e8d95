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

// Package logging configures the process-wide slog logger for rf and rfd.
//
// Logs are JSON on stderr and carry the module name and version:
//
//	logging.SetDefaultStructuredLogger("rfd", version)
//	slog.Info("server listening", "address", addr)
//
// The LOG_LEVEL environment variable (debug, info, warn, error) overrides
// the level chosen by the caller; unknown values fall back to info. Debug
// records include the source location.
//
// NewLogLogger bridges the default handler to a *log.Logger for
// net/http.Server error output.
package logging
