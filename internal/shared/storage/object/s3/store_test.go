package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "report/cv.pdf", want: "report/cv.pdf"},
		{name: "simple prefix", prefix: "uploads", key: "report/cv.pdf", want: "uploads/report/cv.pdf"},
		{name: "prefix trailing slash", prefix: "uploads/", key: "report/cv.pdf", want: "uploads/report/cv.pdf"},
		{name: "prefix and key slashes", prefix: "/uploads/", key: "/report/cv.pdf", want: "uploads/report/cv.pdf"},
		{name: "nested prefix", prefix: "uploads/prod", key: "report/cv.pdf", want: "uploads/prod/report/cv.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}
