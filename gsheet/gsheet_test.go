// Copyright 2026 The go-misc Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gsheet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/ledona/go-misc/data/frame"
	"github.com/ledona/go-misc/deepcompare"
)

// fakeSheets serves just enough of the Sheets v4 surface for the wrapper:
// one spreadsheet with one value range, title fetch, update and append.
type fakeSheets struct {
	t *testing.T

	title  string
	values [][]any

	appends int
}

func (f *fakeSheets) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && strings.Contains(r.URL.Path, "/values/"):
			f.respond(w, &sheets.ValueRange{Values: f.values})
		case r.Method == http.MethodGet:
			f.respond(w, &sheets.Spreadsheet{
				Properties: &sheets.SpreadsheetProperties{Title: f.title},
			})
		case r.Method == http.MethodPut:
			var vr sheets.ValueRange
			f.decode(r, &vr)
			f.values = vr.Values
			f.respond(w, &sheets.UpdateValuesResponse{})
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, ":append"):
			var vr sheets.ValueRange
			f.decode(r, &vr)
			f.values = append(f.values, vr.Values...)
			f.appends++
			f.respond(w, &sheets.AppendValuesResponse{})
		default:
			f.t.Errorf("unexpected request %s %s", r.Method, r.URL)
			http.Error(w, "unexpected request", http.StatusBadRequest)
		}
	})
}

func (f *fakeSheets) decode(r *http.Request, into any) {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		f.t.Errorf("bad request body: %s", err)
	}
}

func (f *fakeSheets) respond(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		f.t.Errorf("encoding response: %s", err)
	}
}

func newTestSpreadsheet(t *testing.T, fake *fakeSheets) *Spreadsheet {
	t.Helper()
	fake.t = t
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	s, err := New(context.Background(), "sheet-1",
		option.WithEndpoint(srv.URL), option.WithoutAuthentication())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestTitle(t *testing.T) {
	t.Parallel()
	s := newTestSpreadsheet(t, &fakeSheets{title: "scores 2024"})

	title, err := s.Title(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if title != "scores 2024" {
		t.Fatalf("title %q", title)
	}
}

func TestReadWriteAppend(t *testing.T) {
	t.Parallel()
	fake := &fakeSheets{values: [][]any{{"name", "score"}, {"ann", 3.0}}}
	s := newTestSpreadsheet(t, fake)
	ctx := context.Background()

	rows, err := s.ReadRange(ctx, "Sheet1!A1:B2")
	if err != nil {
		t.Fatal(err)
	}
	if want := [][]any{{"name", "score"}, {"ann", 3.0}}; !reflect.DeepEqual(rows, want) {
		t.Fatalf("rows %v, want %v", rows, want)
	}

	if err := s.WriteRange(ctx, "Sheet1!A1:B2", [][]any{{"name"}, {"bob"}}); err != nil {
		t.Fatal(err)
	}
	if want := [][]any{{"name"}, {"bob"}}; !reflect.DeepEqual(fake.values, want) {
		t.Fatalf("stored values %v, want %v", fake.values, want)
	}

	if err := s.Append(ctx, "Sheet1!A1", [][]any{{"cho"}}); err != nil {
		t.Fatal(err)
	}
	if fake.appends != 1 || len(fake.values) != 3 {
		t.Fatalf("append not recorded: %v", fake.values)
	}
}

func TestReadFrame(t *testing.T) {
	t.Parallel()
	s := newTestSpreadsheet(t, &fakeSheets{values: [][]any{
		{"name", "score"},
		{"ann", 3.0},
		{"bob"}, // short row pads with nil
	}})

	got, err := s.ReadFrame(context.Background(), "Sheet1!A1:B3")
	if err != nil {
		t.Fatal(err)
	}
	want := frame.MustNew(
		frame.Column{Name: "name", Values: []any{"ann", "bob"}},
		frame.Column{Name: "score", Values: []any{3.0, nil}},
	)
	if _, err := deepcompare.CompareFrames(got, want); err != nil {
		t.Fatal(err)
	}
}

func TestReadFrameBadHeader(t *testing.T) {
	t.Parallel()
	s := newTestSpreadsheet(t, &fakeSheets{values: [][]any{{"name", 2.0}}})

	if _, err := s.ReadFrame(context.Background(), "Sheet1!A1:B1"); err == nil {
		t.Fatal("numeric header cell should be rejected")
	}
}

func TestWriteFrame(t *testing.T) {
	t.Parallel()
	fake := &fakeSheets{}
	s := newTestSpreadsheet(t, fake)

	f := frame.MustNew(
		frame.Column{Name: "name", Values: []any{"ann", "bob"}},
		frame.Column{Name: "score", Values: []any{3.0, 4.0}},
	)
	if err := s.WriteFrame(context.Background(), "Sheet1!A1", f); err != nil {
		t.Fatal(err)
	}
	want := [][]any{{"name", "score"}, {"ann", 3.0}, {"bob", 4.0}}
	if !reflect.DeepEqual(fake.values, want) {
		t.Fatalf("stored values %v, want %v", fake.values, want)
	}
}
