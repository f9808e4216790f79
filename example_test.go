package htmlwriter_test

import (
	"fmt"

	"github.com/inful/htmlwriter"
)

func Example() {
	body := htmlwriter.New()
	err := body.Tag("div", nil, func(*htmlwriter.Tag) error {
		return body.TagWithContent("Hello world!", "p")
	})
	if err != nil {
		panic(err)
	}

	fmt.Print(body.Render(2))
	// Output:
	// <div>
	//   <p>
	//     Hello world!
	//   </p>
	// </div>
}

func ExampleHTMLTemplate() {
	head := htmlwriter.New()
	if err := head.SelfClosingTag("meta", htmlwriter.Attr{Key: "charset", Value: "utf-8"}); err != nil {
		panic(err)
	}

	body := htmlwriter.New()
	if err := body.TagWithContent("Welcome", "h1"); err != nil {
		panic(err)
	}

	fmt.Print(htmlwriter.HTMLTemplate(head, body))
	// Output:
	// <!DOCTYPE html>
	// <html>
	//   <head>
	//     <meta charset="utf-8"/>
	//   </head>
	//   <body>
	//     <h1>
	//       Welcome
	//     </h1>
	//   </body>
	// </html>
}
