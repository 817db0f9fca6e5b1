// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package config loads the stubgen configuration file.
//
// The file is HCL. Every attribute is optional and flags given on the
// command line take precedence over it:
//
//	languages       = ["ruby", "python"]
//	import_paths    = ["stubs", "${env.HOME}/puzzles"]
//	log_level       = "debug"
//	log_format      = "json"
//	max_parallelism = 4
//
//	test {
//	  cases   = "cases.yaml"
//	  timeout = "2s"
//	  run     = ["python3", "solution.py"]
//	}
//
// Expressions can read environment variables through the env object.
package config
