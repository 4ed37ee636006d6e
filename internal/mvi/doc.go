// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mvi implements a small Model-View-Intent state machine.
//
// A screen describes three closed variant sets: intents (what the user asked
// for), results (what happened while handling an intent) and view states
// (what should be rendered). The [StateMachine] turns a stream of intents into
// a stream of view states:
//
//	intents ──► Dispatch ──► results ──► Reducer ──► LiveState
//
// Dispatch runs concurrently on a bounded worker pool, so a LoadMore fired
// while a Load is still in flight is neither dropped nor queued behind it.
// Results are reduced strictly in arrival order by a single goroutine, which
// is the only writer of the [LiveState].
//
// Collaborator calls are wrapped with [Apply], which emits an in-progress
// result, then exactly one success or error result, and converts both errors
// and panics into error results so that a failing call never stops the
// machine.
//
// [Page] and [Merge] implement cursor pagination with duplicate suppression.
package mvi
