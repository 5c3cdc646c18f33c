package docsite

import "testing"

func TestAutolink(t *testing.T) {
	nodes := []ModuleNode{
		{ID: "MyApp", Type: NodeModule},
		{ID: "MyApp.Error", Type: NodeException},
		{ID: "MyApp.Walker.List", Type: NodeImpl},
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "rewrites known reference",
			in:   "See `MyApp` for details.",
			want: "See [`MyApp`](MyApp.html) for details.",
		},
		{
			name: "rewrites dotted name as one unit",
			in:   "Raises `MyApp.Error` on failure.",
			want: "Raises [`MyApp.Error`](MyApp.Error.html) on failure.",
		},
		{
			name: "implementations resolve as targets",
			in:   "Lists use `MyApp.Walker.List`.",
			want: "Lists use [`MyApp.Walker.List`](MyApp.Walker.List.html).",
		},
		{
			name: "unknown names untouched",
			in:   "Uses `OtherLib` internally.",
			want: "Uses `OtherLib` internally.",
		},
		{
			name: "already linked occurrence untouched",
			in:   "See [`MyApp`](MyApp.html).",
			want: "See [`MyApp`](MyApp.html).",
		},
		{
			name: "multiple references in one line",
			in:   "`MyApp` wraps `MyApp.Error`.",
			want: "[`MyApp`](MyApp.html) wraps [`MyApp.Error`](MyApp.Error.html).",
		},
		{
			name: "bare name without backticks untouched",
			in:   "MyApp is great.",
			want: "MyApp is great.",
		},
		{
			name: "empty text",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Autolink(tt.in, nodes); got != tt.want {
				t.Errorf("Autolink(%q)\n got: %q\nwant: %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAutolinkNoNodes(t *testing.T) {
	in := "See `MyApp`."
	if got := Autolink(in, nil); got != in {
		t.Errorf("Autolink with no nodes = %q, want input unchanged", got)
	}
}

func TestAutolinkIdempotent(t *testing.T) {
	nodes := []ModuleNode{{ID: "MyApp", Type: NodeModule}}
	in := "Start with `MyApp` and read `MyApp` again."

	once := Autolink(in, nodes)
	twice := Autolink(once, nodes)
	if once != twice {
		t.Errorf("Autolink not idempotent:\n once: %q\ntwice: %q", once, twice)
	}
}

func TestAutolinkRegexMetacharactersInID(t *testing.T) {
	nodes := []ModuleNode{{ID: "MyApp.V1+Compat", Type: NodeModule}}
	in := "Use `MyApp.V1+Compat` here."
	want := "Use [`MyApp.V1+Compat`](MyApp.V1+Compat.html) here."
	if got := Autolink(in, nodes); got != want {
		t.Errorf("Autolink = %q, want %q", got, want)
	}
}
