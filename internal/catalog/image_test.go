package catalog

import (
	"errors"
	"testing"
)

func TestNormalizeImageURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "drive sharing link",
			input: "https://drive.google.com/file/d/XYZ789/view",
			want:  "https://drive.google.com/uc?export=view&id=XYZ789",
		},
		{
			name:  "drive sharing link with query",
			input: "https://drive.google.com/file/d/ABC123/view?usp=sharing",
			want:  "https://drive.google.com/uc?export=view&id=ABC123",
		},
		{
			name:  "already direct drive link",
			input: "https://drive.google.com/uc?export=view&id=XYZ789",
			want:  "https://drive.google.com/uc?export=view&id=XYZ789",
		},
		{
			name:    "unrecognized drive link",
			input:   "https://drive.google.com/drive/folders/XYZ789",
			want:    "https://drive.google.com/drive/folders/XYZ789",
			wantErr: ErrUnrecognizedShareLink,
		},
		{
			name:    "drive link with empty identifier",
			input:   "https://drive.google.com/file/d/",
			want:    "https://drive.google.com/file/d/",
			wantErr: ErrUnrecognizedShareLink,
		},
		{
			name:  "imgur link passes through",
			input: "https://i.imgur.com/abc.png",
			want:  "https://i.imgur.com/abc.png",
		},
		{
			name:  "empty string passes through",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeImageURL(tt.input)

			if got != tt.want {
				t.Errorf("NormalizeImageURL() = %q, want %q", got, tt.want)
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NormalizeImageURL() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeImageURL_Idempotent(t *testing.T) {
	inputs := []string{
		"https://drive.google.com/file/d/XYZ789/view",
		"https://drive.google.com/file/d/ABC123/view?usp=sharing",
		"https://drive.google.com/uc?export=view&id=XYZ789",
		"https://drive.google.com/drive/folders/XYZ789",
		"https://i.imgur.com/abc.png",
		"",
	}

	for _, input := range inputs {
		once, _ := NormalizeImageURL(input)
		twice, _ := NormalizeImageURL(once)

		if once != twice {
			t.Errorf("normalize(%q) not idempotent: first %q, second %q", input, once, twice)
		}
	}
}
