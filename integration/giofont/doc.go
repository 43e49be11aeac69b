// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package giofont exposes fontreg fonts to Gio (gioui.org).
//
// Gio selects faces from a font collection by typeface, style and weight.
// Collection builds that collection from a populated registry, and FontOf
// maps a resolved fontreg.Font to the gio font.Font that selects it.
//
// # Usage
//
//	collection, err := giofont.Collection(fontreg.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	th := material.NewTheme()
//	th.Shaper = text.NewShaper(text.WithCollection(collection))
//
//	label := material.Body1(th, "Hello")
//	label.Font = giofont.FontOf(fontreg.Resolve("Sans", 700, false))
package giofont
