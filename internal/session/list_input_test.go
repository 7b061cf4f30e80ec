package session

import (
	"reflect"
	"testing"
)

func TestAppendUnique(t *testing.T) {
	testCases := []struct {
		name   string
		values []string
		add    string
		want   []string
	}{
		{"append new value", []string{"Acme"}, "Globex", []string{"Acme", "Globex"}},
		{"duplicate leaves sequence unchanged", []string{"Acme", "Globex"}, "Acme", []string{"Acme", "Globex"}},
		{"value is trimmed", []string{}, "  Initech  ", []string{"Initech"}},
		{"trimmed duplicate rejected", []string{"Acme"}, " Acme ", []string{"Acme"}},
		{"blank input ignored", []string{"Acme"}, "   ", []string{"Acme"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := AppendUnique(tc.values, tc.add)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestMergePasted(t *testing.T) {
	testCases := []struct {
		name   string
		values []string
		pasted string
		want   []string
	}{
		{
			name:   "splits and trims",
			values: []string{},
			pasted: "Developer, SRE ,  Platform Engineer",
			want:   []string{"Developer", "SRE", "Platform Engineer"},
		},
		{
			name:   "dedupes against existing entries",
			values: []string{"Developer"},
			pasted: "Developer, QA",
			want:   []string{"Developer", "QA"},
		},
		{
			name:   "dedupes within the batch",
			values: []string{},
			pasted: "QA, QA, QA",
			want:   []string{"QA"},
		},
		{
			name:   "drops empty segments",
			values: []string{"Developer"},
			pasted: ", ,  ,",
			want:   []string{"Developer"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MergePasted(tc.values, tc.pasted)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
