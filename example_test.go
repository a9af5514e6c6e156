package md2site_test

import (
	"context"
	"fmt"
	"log"

	md2site "github.com/alnah/go-md2site"
)

func Example() {
	svc := md2site.New(md2site.WithPageTemplate("{{.Body}}"))

	page, err := svc.Convert(context.Background(), md2site.Input{
		Markdown: "---\ntitle: Notes\n---\nSee [the index](index.md).",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(page)
	// Output:
	// <p>See <a href="index.html">the index</a>.</p>
	// <hr />
}
