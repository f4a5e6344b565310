package domain_test

import (
	"customers/pkg/domain"
	"customers/pkg/result"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateEmail(t *testing.T) {
	long := strings.Repeat("a", 250) + "@x.com" // 256 characters
	tooLong := strings.Repeat("a", 251) + "@x.com"

	tests := []struct {
		name    string
		raw     result.Maybe[string]
		want    string
		wantErr string
	}{
		{name: "absent", raw: result.None[string](), wantErr: "Email should not be empty"},
		{name: "empty", raw: result.Some(""), wantErr: "Email should not be empty"},
		{name: "whitespace only", raw: result.Some(" \n "), wantErr: "Email should not be empty"},
		{name: "valid", raw: result.Some("jane@x.com"), want: "jane@x.com"},
		{name: "trimmed", raw: result.Some("  jane@x.com "), want: "jane@x.com"},
		{name: "max length", raw: result.Some(long), want: long},
		{name: "too long is checked before pattern", raw: result.Some(strings.Repeat("a", 257)), wantErr: "Email is too long"},
		{name: "too long", raw: result.Some(tooLong), wantErr: "Email is too long"},
		{name: "no at sign", raw: result.Some("jane.x.com"), wantErr: "Email is invalid"},
		{name: "empty local part", raw: result.Some("@x.com"), wantErr: "Email is invalid"},
		{name: "empty domain part", raw: result.Some("jane@"), wantErr: "Email is invalid"},
		{name: "no further rfc checks", raw: result.Some("a@b@c"), want: "a@b@c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.CreateEmail(tt.raw)
			if tt.wantErr != "" {
				require.True(t, r.IsFailure())
				require.Equal(t, tt.wantErr, r.Error())

				return
			}

			require.True(t, r.IsSuccess(), r.Error())
			require.Equal(t, tt.want, r.Value().String())
		})
	}
}

func TestEmail_Equality(t *testing.T) {
	require.Equal(t, domain.MustEmail("jane@x.com"), domain.MustEmail("jane@x.com "))
	require.NotEqual(t, domain.MustEmail("jane@x.com"), domain.MustEmail("john@x.com"))
	require.Panics(t, func() { domain.MustEmail("nope") })
}
