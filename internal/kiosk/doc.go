// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package kiosk implements the scan workflow of a sign-out terminal.
//
// A [Workflow] is an explicit state machine driven by scan events:
//
//	Unauthenticated --badge--> AwaitingPIN | AwaitingRegistration
//	AwaitingPIN --PIN ok--> Authenticated
//	AwaitingRegistration --name+PIN--> Authenticated
//	Authenticated --item--> Authenticated (checkout or checkin, per mode)
//	any --Home--> Unauthenticated
//
// The workflow keeps no identity of its own beyond the current scan; every
// decision is made by the server behind [adapter.ServerAdapter].
package kiosk
