package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReligion(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"distribution with percentages", "Christianity 65%, Islam 5%, other 30%", "Christianity"},
		{"decimal percentage", "Roman Catholic 80.8%, Protestant 6%", "Roman Catholic"},
		{"single entry", "Buddhism 70%", "Buddhism"},
		{"no percentage", "Islam, Christianity", "Islam"},
		{"parenthesized percentage", "Hindu 79.8% (2011 est.), Muslim 14.2%", "Hindu"},
		{"empty", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Religion(c.in))
		})
	}
}

func TestHeadOfState(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"president with since", "President John Doe (since 2020)", "John Doe"},
		{"prime minister", "Prime Minister Jane SMITH (since 25 October 2022)", "Jane SMITH"},
		{"chief of state title", "Chief of State Maria GARCIA", "Maria GARCIA"},
		{"title case-insensitive", "PRESIDENT Alpha BRAVO", "Alpha BRAVO"},
		{"vacant office", "President (vacant)", Vacant},
		{"acting holder", "Acting President Carl WEST (since 1 May 2024)", Vacant},
		{"empty after stripping", "President (since 2020)", NotAvailable},
		{"empty input", "   ", NotAvailable},
		{"no title", "Emmanuel MACRON (since 14 May 2017)", "Emmanuel MACRON"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, HeadOfState(c.in))
		})
	}
}

func TestIndependenceDate(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"full date with qualifier", "4 July 1776 (from Great Britain)", "4 July 1776"},
		{"two digit day", "17 August 1945 (declared)", "17 August 1945"},
		{"bare year", "independence declared in 1991", "1991"},
		{"text before parenthesis", "no fixed date (traditional founding)", "no fixed date"},
		{"empty", "", NotAvailable},
		{"only parenthetical", "(disputed)", NotAvailable},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, IndependenceDate(c.in))
		})
	}
}
