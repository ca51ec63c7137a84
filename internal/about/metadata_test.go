package about

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/twothumbs/twothumbs/internal/errors"
)

func TestGet(t *testing.T) {
	m := Get()

	assert.Equal(t, Title, m.Title)
	assert.Equal(t, Summary, m.Summary)
	assert.Equal(t, URI, m.URI)
	assert.Equal(t, "1.0.3", m.Version)
	assert.Equal(t, Author, m.Author)
	assert.Equal(t, Email, m.Email)
	assert.Equal(t, License, m.License)
	assert.Equal(t, Copyright, m.Copyright)
}

func TestFieldsOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"Title", "Summary", "URI", "Version", "Author", "Email", "License", "Copyright"},
		Names(),
	)

	for _, f := range Fields() {
		assert.NotEmpty(t, f.Value, "field %s should have a value", f.Name)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		input string
		want  string
		found bool
	}{
		{"Version", Version, true},
		{"version", Version, true},
		{"VERSION", Version, true},
		{"  uri ", URI, true},
		{"Copyright", Copyright, true},
		{"maintainer", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, ok := Lookup(tt.input)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, f.Value)
		})
	}
}

func TestCheck_ShippedNames(t *testing.T) {
	require.NoError(t, Check(Names()))
}

func TestCheckFields(t *testing.T) {
	fields := []Field{
		{Name: "Title", Key: "title", Value: "x"},
		{Name: "Version", Key: "version", Value: "1.0.0"},
	}

	tests := []struct {
		name      string
		fields    []Field
		names     []string
		wantNames []string
	}{
		{
			name:   "exact match",
			fields: fields,
			names:  []string{"Title", "Version"},
		},
		{
			name:      "name not defined",
			fields:    fields,
			names:     []string{"Title", "Version", "Author"},
			wantNames: []string{"Author"},
		},
		{
			name:      "duplicate declaration",
			fields:    fields,
			names:     []string{"Title", "Version", "Title"},
			wantNames: []string{"Title"},
		},
		{
			name:      "defined but not declared",
			fields:    fields,
			names:     []string{"Title"},
			wantNames: []string{"Version"},
		},
		{
			name: "empty value",
			fields: []Field{
				{Name: "Title", Key: "title", Value: "x"},
				{Name: "Version", Key: "version", Value: ""},
			},
			names:     []string{"Title", "Version"},
			wantNames: []string{"Version"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkFields(tt.fields, tt.names)
			if len(tt.wantNames) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, oerrors.ErrMissingConstant)
			assert.Equal(t, oerrors.ExitMissingConstant, oerrors.ExitCodeFromError(err))

			var mc *MissingConstantError
			require.True(t, errors.As(err, &mc))
			assert.Equal(t, tt.wantNames[0], mc.Name)
			assert.Contains(t, err.Error(), "missing metadata constant")
		})
	}
}

func TestCheckFields_ReportsEveryProblem(t *testing.T) {
	fields := []Field{{Name: "Title", Key: "title", Value: "x"}}
	err := checkFields(fields, []string{"Author", "Email"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Author")
	assert.Contains(t, err.Error(), "Email")
	assert.Contains(t, err.Error(), "Title: defined but not declared public")
}
