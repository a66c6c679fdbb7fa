package conv

import "testing"

func TestConvert(t *testing.T) {
	type input struct {
		Query string `json:"query"`
		Limit int    `json:"limit,omitempty"`
	}

	out := &input{Limit: 5}
	if err := Convert(map[string]interface{}{"query": "go"}, out); err != nil {
		t.Fatal(err)
	}
	if out.Query != "go" || out.Limit != 5 {
		t.Fatalf("expected preset limit preserved, got %+v", out)
	}

	out = &input{Limit: 5}
	if err := Convert(map[string]interface{}{"query": "go", "limit": 0}, out); err != nil {
		t.Fatal(err)
	}
	if out.Limit != 0 {
		t.Fatalf("expected explicit zero to override the preset, got %v", out.Limit)
	}

	out = &input{Limit: 5}
	if err := Convert(nil, out); err != nil {
		t.Fatal(err)
	}
	if out.Limit != 5 {
		t.Fatalf("expected nil input to leave the value untouched, got %v", out.Limit)
	}

	var direct input
	if err := Convert(input{Query: "copy"}, &direct); err != nil {
		t.Fatal(err)
	}
	if direct.Query != "copy" {
		t.Fatalf("expected assignable fast-path copy, got %+v", direct)
	}

	if err := Convert(map[string]interface{}{}, nil); err == nil {
		t.Fatal("expected an error for a nil target")
	}
}

func TestPointer(t *testing.T) {
	ptr := Pointer(true)
	if ptr == nil || !*ptr {
		t.Fatal("expected pointer to true")
	}
	if Dereference(ptr) != true {
		t.Fatal("expected dereferenced value")
	}
	var nilPtr *int
	if Dereference(nilPtr) != 0 {
		t.Fatal("expected zero value for nil pointer")
	}
}
