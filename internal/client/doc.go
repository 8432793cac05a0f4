// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sign-out terminal runtime.
//
// It reads one scan or command per line (a keyboard-wedge scanner types the
// code followed by Enter), feeds it into the [kiosk.Workflow] and prints the
// next prompt.
package client
