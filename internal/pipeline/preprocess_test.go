package pipeline

import "testing"

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"newlines become spaces", "birinci sətir\nikinci sətir", "birinci sətir ikinci sətir"},
		{"guillemets straightened", "«Kapital Bank» bildirdi", `"Kapital Bank" bildirdi`},
		{"curly quotes straightened", "“ASAN xidmət” açıldı", `"ASAN xidmət" açıldı`},
		{"bullets removed", "• birinci • ikinci", "birinci ikinci"},
		{"mln expanded", "5 mln. manat", "5 milyon manat"},
		{"mlrd expanded", "2 mlrd. dollar", "2 milyard dollar"},
		{"whitespace collapsed", "  çox   boşluq\t var  ", "çox boşluq var"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preprocess(tt.in); got != tt.want {
				t.Errorf("Preprocess(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPreprocess_Idempotent(t *testing.T) {
	in := "«Xəbər»\n5 mln. manat"
	once := Preprocess(in)
	if twice := Preprocess(once); twice != once {
		t.Errorf("Preprocess not idempotent: %q vs %q", once, twice)
	}
}

func TestExtractText(t *testing.T) {
	src := `<html><head><title>Xəbər</title><style>p{color:red}</style></head>
<body><script>var x=1;</script><h1>Başlıq</h1><p>Mətn <b>hissəsi</b>.</p>
<noscript>enable js</noscript></body></html>`

	got := ExtractText(src)
	want := "Xəbər Başlıq Mətn hissəsi ."
	if got != want {
		t.Errorf("ExtractText = %q, want %q", got, want)
	}
}
