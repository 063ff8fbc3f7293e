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

// Package gsheet is a thin wrapper over the Google Sheets v4 API for the
// read-range, write-range and append operations the data tools need, plus a
// bridge from sheet ranges to data/frame tables.
package gsheet

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/ledona/go-misc/data/frame"
)

// Spreadsheet accesses one spreadsheet by ID.
type Spreadsheet struct {
	svc *sheets.Service
	id  string
}

// New opens the spreadsheet with the given ID. Credentials and transport are
// configured through standard client options, e.g.
// option.WithCredentialsFile; tests pass option.WithEndpoint and
// option.WithoutAuthentication.
func New(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*Spreadsheet, error) {
	if spreadsheetID == "" {
		return nil, errors.New("gsheet: spreadsheet ID is required")
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gsheet: creating sheets service: %w", err)
	}
	return &Spreadsheet{svc: svc, id: spreadsheetID}, nil
}

// Title returns the spreadsheet's title.
func (s *Spreadsheet) Title(ctx context.Context) (string, error) {
	resp, err := s.svc.Spreadsheets.Get(s.id).
		Fields("properties.title").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gsheet: fetching spreadsheet %s: %w", s.id, err)
	}
	if resp.Properties == nil {
		return "", nil
	}
	return resp.Properties.Title, nil
}

// ReadRange returns the cell values in the A1-notation range, one row per
// element. Trailing empty cells are absent, as the API returns them.
func (s *Spreadsheet) ReadRange(ctx context.Context, a1Range string) ([][]any, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.id, a1Range).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("gsheet: reading %s: %w", a1Range, err)
	}
	return resp.Values, nil
}

// WriteRange overwrites the A1-notation range with values, one row per
// element. Values are written raw, without spreadsheet-side parsing.
func (s *Spreadsheet) WriteRange(ctx context.Context, a1Range string, values [][]any) error {
	_, err := s.svc.Spreadsheets.Values.
		Update(s.id, a1Range, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("gsheet: writing %s: %w", a1Range, err)
	}
	return nil
}

// Append adds rows after the last data row of the table containing the
// A1-notation range.
func (s *Spreadsheet) Append(ctx context.Context, a1Range string, values [][]any) error {
	_, err := s.svc.Spreadsheets.Values.
		Append(s.id, a1Range, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("gsheet: appending to %s: %w", a1Range, err)
	}
	return nil
}

// ReadFrame reads the range as a table whose first row holds the column
// names. Short rows are padded with nils to the header width.
func (s *Spreadsheet) ReadFrame(ctx context.Context, a1Range string) (*frame.Frame, error) {
	rows, err := s.ReadRange(ctx, a1Range)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("gsheet: range %s has no header row", a1Range)
	}

	header := rows[0]
	cols := make([]frame.Column, len(header))
	for i, name := range header {
		label, ok := name.(string)
		if !ok || label == "" {
			return nil, fmt.Errorf("gsheet: range %s header cell %d is not a name", a1Range, i)
		}
		values := make([]any, 0, len(rows)-1)
		for _, row := range rows[1:] {
			if i < len(row) {
				values = append(values, row[i])
			} else {
				values = append(values, nil)
			}
		}
		cols[i] = frame.Column{Name: label, Values: values}
	}
	return frame.New(cols...)
}

// WriteFrame overwrites the range with the frame's columns, header row
// first. The frame's index is not written.
func (s *Spreadsheet) WriteFrame(ctx context.Context, a1Range string, f *frame.Frame) error {
	names := f.Columns()
	rows := make([][]any, 0, f.NumRows()+1)
	header := make([]any, len(names))
	for i, name := range names {
		header[i] = name
	}
	rows = append(rows, header)
	for r := 0; r < f.NumRows(); r++ {
		row := make([]any, len(names))
		for i, name := range names {
			cell, _ := f.Cell(name, r)
			row[i] = cell
		}
		rows = append(rows, row)
	}
	return s.WriteRange(ctx, a1Range, rows)
}
