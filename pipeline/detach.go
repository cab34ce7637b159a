// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !debug

package pipeline

// DetachAfterLink is the default of [Manager.DetachAfterLink].
const DetachAfterLink = true
