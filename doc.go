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


// Package stubcompile provides the entry point for compiling stub generator
// scripts. A stub generator script describes the input and output shape of
// a programming puzzle, and compiling it produces starter code in a target
// language.
//
// The sub-packages represent the phases of that process:
//  1. Parse into an AST.
//     Also see: parser.Parse
//  2. Rewrite the AST for the target language.
//     Also see: preprocessor.ReadBatches
//  3. Render the AST with the target language's templates.
//     Also see: renderer.RenderStub
//
// This package provides functions that run all of the phases for a single
// script ([Generate]) and a [Compiler] that parses many scripts in parallel.
//
// # Resolvers
//
// A Resolver is how the compiler locates the scripts to compile. It can
// answer a query with source code, which the compiler parses, or with an
// already parsed stub, which is used as is.
//
// # Compiler
//
// A Compiler accepts a list of file names and produces the list of stubs.
// Only the Resolver field is required. A minimal Compiler, that loads files
// from the file system relative to the current working directory, can be had
// with the following snippet:
//
//	compiler := stubcompile.Compiler{
//	    Resolver: &stubcompile.SourceResolver{},
//	}
//
// This minimal Compiler will use default parallelism, equal to the number of
// CPU cores detected, and it will fail fast at the first error.
package stubcompile
