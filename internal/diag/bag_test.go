package diag_test

import (
	"testing"

	"shaderlint/internal/diag"
	"shaderlint/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	bag := diag.NewBag(2)
	for i := 0; i < 5; i++ {
		bag.Add(diag.NewInfo(diag.OptInfo, span(0, uint32(i), uint32(i)+1), "x"))
	}
	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2", bag.Len())
	}
	if bag.Add(diag.NewInfo(diag.OptInfo, span(0, 9, 10), "x")) {
		t.Error("Add over limit reported success")
	}
}

func TestBagSortOrder(t *testing.T) {
	bag := diag.NewBag(16)
	bag.Add(diag.NewInfo(diag.OptSwizzle, span(1, 0, 1), "other file"))
	bag.Add(diag.NewInfo(diag.OptDynamicLoop, span(0, 20, 25), "late"))
	bag.Add(diag.NewInfo(diag.OptManualLerp, span(0, 5, 9), "early wide"))
	bag.Add(diag.NewWarning(diag.StyleIdentCase, span(0, 5, 8), "early narrow"))
	bag.Add(diag.NewError(diag.StyleVersionDirective, span(0, 5, 8), "same span, higher severity"))

	bag.Sort()
	items := bag.Items()

	wantMessages := []string{
		"same span, higher severity", // severity desc within equal spans
		"early narrow",
		"early wide", // wider end sorts after
		"late",
		"other file", // file ID is the outermost key
	}
	for i, want := range wantMessages {
		if items[i].Message != want {
			t.Errorf("position %d = %q, want %q", i, items[i].Message, want)
		}
	}
}

func TestBagSortIsStable(t *testing.T) {
	bag := diag.NewBag(8)
	bag.Add(diag.NewInfo(diag.OptInfo, span(0, 3, 4), "first"))
	bag.Add(diag.NewInfo(diag.OptInfo, span(0, 3, 4), "second"))
	bag.Sort()
	items := bag.Items()
	if items[0].Message != "first" || items[1].Message != "second" {
		t.Errorf("equal diagnostics reordered: %q, %q", items[0].Message, items[1].Message)
	}
}

func TestBagDedup(t *testing.T) {
	bag := diag.NewBag(8)
	bag.Add(diag.NewInfo(diag.OptSwizzle, span(0, 1, 5), "kept"))
	bag.Add(diag.NewInfo(diag.OptSwizzle, span(0, 1, 5), "dropped duplicate"))
	bag.Add(diag.NewInfo(diag.OptSwizzle, span(0, 1, 6), "different span"))
	bag.Add(diag.NewInfo(diag.OptManualLerp, span(0, 1, 5), "different code"))

	bag.Dedup()
	if bag.Len() != 3 {
		t.Fatalf("Len = %d, want 3: %v", bag.Len(), bag.Items())
	}
	if bag.Items()[0].Message != "kept" {
		t.Errorf("first item = %q, want the original", bag.Items()[0].Message)
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := diag.NewBag(1)
	a.Add(diag.NewInfo(diag.OptInfo, span(0, 0, 1), "a"))
	b := diag.NewBag(2)
	b.Add(diag.NewInfo(diag.OptInfo, span(0, 1, 2), "b1"))
	b.Add(diag.NewInfo(diag.OptInfo, span(0, 2, 3), "b2"))

	a.Merge(b)
	if a.Len() != 3 {
		t.Errorf("Len = %d, want 3", a.Len())
	}
}

func TestHasErrorsAndWarnings(t *testing.T) {
	bag := diag.NewBag(4)
	bag.Add(diag.NewInfo(diag.OptInfo, span(0, 0, 1), "info"))
	if bag.HasErrors() || bag.HasWarnings() {
		t.Error("info-only bag reports errors or warnings")
	}
	bag.Add(diag.NewWarning(diag.StyleIdentCase, span(0, 0, 1), "warn"))
	if bag.HasErrors() {
		t.Error("warning counted as error")
	}
	if !bag.HasWarnings() {
		t.Error("warning not detected")
	}
	bag.Add(diag.NewError(diag.StyleVersionDirective, span(0, 0, 1), "err"))
	if !bag.HasErrors() {
		t.Error("error not detected")
	}
}

func TestCodeIDRoundTrip(t *testing.T) {
	codes := []diag.Code{
		diag.LexUnknownChar,
		diag.SynExpectSemicolon,
		diag.StyleVersionDirective,
		diag.OptManualLerp,
		diag.InternalRuleError,
	}
	for _, c := range codes {
		got, ok := diag.CodeByID(c.ID())
		if !ok || got != c {
			t.Errorf("CodeByID(%q) = %v %v, want %v", c.ID(), got, ok, c)
		}
	}
	if _, ok := diag.CodeByID("no-such-rule"); ok {
		t.Error("unknown ID resolved")
	}
}

func TestIsParsePhase(t *testing.T) {
	if !diag.LexUnknownChar.IsParsePhase() || !diag.SynExpectType.IsParsePhase() {
		t.Error("lex/syn codes not classified as parse phase")
	}
	if diag.StyleIdentCase.IsParsePhase() || diag.OptSwizzle.IsParsePhase() {
		t.Error("rule codes classified as parse phase")
	}
}
