// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the logmon command-line client.
//
// [App] wires configuration, the REST services and the push channel into a
// single process lifecycle; [NewRootCommand] exposes them as a cobra command
// tree. Every command prints its result as indented JSON on stdout. When a
// REST call fails the degraded value is still printed and the command exits
// non-zero.
package client
