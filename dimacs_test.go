package gasat

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseDIMACS(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *Formula
		wantErr bool
	}{
		{
			name: "basic",
			input: `c a comment
p cnf 3 2
1 -2 0
-1 2 3 0
`,
			want: &Formula{
				NVars:   3,
				Clauses: []Clause{{1, -2}, {-1, 2, 3}},
			},
		},
		{
			name: "clause split across lines",
			input: `p cnf 2 1
1
-2 0
`,
			want: &Formula{NVars: 2, Clauses: []Clause{{1, -2}}},
		},
		{
			name: "missing problem line infers nvars",
			input: `1 -2 0
3 0
`,
			want: &Formula{NVars: 3, Clauses: []Clause{{1, -2}, {3}}},
		},
		{
			name: "percent trailer ignored",
			input: `p cnf 1 1
1 0
%
0 this is a solution trailer, not clause data
`,
			want: &Formula{NVars: 1, Clauses: []Clause{{1}}},
		},
		{
			name:    "clause variable exceeds declared count",
			input:   "p cnf 1 1\n1 2 0\n",
			wantErr: true,
		},
		{
			name:    "clause count mismatch",
			input:   "p cnf 2 2\n1 0\n",
			wantErr: true,
		},
		{
			name:    "unterminated clause",
			input:   "p cnf 1 1\n1",
			wantErr: true,
		},
		{
			name:    "malformed problem line",
			input:   "p cnf 1\n1 0\n",
			wantErr: true,
		},
		{
			name:    "non-cnf format",
			input:   "p sat 1 1\n1 0\n",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDIMACS(strings.NewReader(tc.input))
			if tc.wantErr {
				if err == nil {
					t.Fatal("ParseDIMACS() = nil error, want an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDIMACS() = %v, want success", err)
			}
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ParseDIMACS() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteDIMACSRoundTrip(t *testing.T) {
	f := &Formula{NVars: 4, Clauses: []Clause{{1, -2}, {3, 4, -1}}}
	var buf strings.Builder
	if err := WriteDIMACS(&buf, f); err != nil {
		t.Fatalf("WriteDIMACS() = %v", err)
	}
	got, err := ParseDIMACS(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ParseDIMACS(WriteDIMACS(f)) = %v", err)
	}
	if diff := cmp.Diff(f, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
