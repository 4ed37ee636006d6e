// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package viewmodel defines the screens of the client as MVI state machines.
//
// Every screen owns a closed set of intents (user actions), results
// (outcomes of the work an intent triggers) and view states (what the
// presentation shell renders). A dispatch function maps each intent to a
// result stream built with [mvi.Apply]; a pure reducer folds results into
// view states. The Editorial and Artist Invites screens share the generic
// list family defined in list.go; Main and Discover have their own.
//
// Every list-backed view state carries the page it was derived from so that
// loading and error states keep the content already on screen.
package viewmodel
