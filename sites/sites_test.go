package sites

import "testing"

func TestFilterIgnoresCase(t *testing.T) {
	got := Filter(Default, "you", 5)
	if len(got) != 1 || got[0].Name != "YouTube" {
		t.Fatalf("expected [YouTube], got %v", got)
	}
}

func TestFilterKeepsCatalogOrderAndCap(t *testing.T) {
	catalog := []Site{
		{Name: "Alpha"}, {Name: "Beta"}, {Name: "Gamma"},
		{Name: "Delta"}, {Name: "Alpaca"}, {Name: "Kappa"}, {Name: "Lambda"},
	}
	got := Filter(catalog, "A", 5)
	if len(got) != 5 {
		t.Fatalf("expected 5 results, got %d", len(got))
	}
	want := []string{"Alpha", "Beta", "Gamma", "Delta", "Alpaca"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("result %d: expected %s, got %s", i, name, got[i].Name)
		}
	}
}

func TestFilterEmptyQueryMatchesAll(t *testing.T) {
	if got := Filter(Default, "", 0); len(got) != len(Default) {
		t.Fatalf("expected %d sites, got %d", len(Default), len(got))
	}
	if got := Filter(Default, "google", 5); len(got) != 1 || got[0].Name != "Google AI Studio" {
		t.Fatalf("expected [Google AI Studio], got %v", got)
	}
}

func TestInitial(t *testing.T) {
	if got := (Site{Name: "drive"}).Initial(); got != "D" {
		t.Fatalf("expected D, got %s", got)
	}
	if got := (Site{}).Initial(); got != "?" {
		t.Fatalf("expected ?, got %s", got)
	}
}
