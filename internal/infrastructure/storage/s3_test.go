package storage

import "testing"

func TestKeyReversesURL(t *testing.T) {
	cases := []struct {
		name      string
		publicURL string
		bucket    string
	}{
		{"public url", "https://files.example.com", "resumes"},
		{"bucket fallback", "", "resumes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Client{bucket: tc.bucket, publicURL: tc.publicURL}

			url := c.URL("resumes/123_abc.pdf")
			key, ok := c.Key(url)
			if !ok || key != "resumes/123_abc.pdf" {
				t.Fatalf("Key(%q) = %q, %v", url, key, ok)
			}
		})
	}
}

func TestKeyRejectsForeignURL(t *testing.T) {
	c := &Client{bucket: "resumes", publicURL: "https://files.example.com"}

	for _, url := range []string{"https://elsewhere.example.com/x.pdf", "s3://other/x.pdf", ""} {
		if key, ok := c.Key(url); ok {
			t.Fatalf("Key(%q) unexpectedly resolved to %q", url, key)
		}
	}
}
