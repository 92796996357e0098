package config_test

import (
	"context"
	"fmt"

	"github.com/docbridge/docbridge/pkg/config"
	"github.com/docbridge/docbridge/pkg/connector/core"
)

// ExampleDefaults shows the built-in defaults applied before file and
// environment values are layered on top.
func ExampleDefaults() {
	defaults := config.Defaults()

	fmt.Println(defaults[config.KeyDisplayURLPattern])
	fmt.Println(defaults[config.KeyMetadataDateFormat])
	fmt.Println(defaults[config.KeyMaxFeedURLs])

	// Output:
	// /viewer/getContent?objectStoreName={2}&objectType=document&versionStatus=1&vsId={1}
	// yyyy-MM-dd
	// 5000
}

// ExampleValues_Get demonstrates that lookups trim surrounding
// whitespace, so padded file values behave like clean ones.
func ExampleValues_Get() {
	values := config.Values{config.KeyObjectStore: "  ObjStore  "}

	fmt.Printf("%q\n", values.Get(config.KeyObjectStore))

	// Output:
	// "ObjStore"
}

// ExampleNewOptions shows eager validation: the first bad field fails
// the whole load with a config error naming the offending key.
func ExampleNewOptions() {
	// Defaults alone are not a runnable configuration; the engine URL
	// is required and empty.
	_, err := config.NewOptions(context.Background(), config.Defaults(), core.PlainTextDecoder{})

	fmt.Println(err)

	// Output:
	// config: invalid engine.url: validation: url may not be null or empty
}
