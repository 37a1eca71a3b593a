package typenv_test

import (
	"fmt"
	"log"
	"time"

	"github.com/sagarc03/typenv"
)

func ExampleEnv_Get() {
	env, err := typenv.New(typenv.FromMap(map[string]string{
		"PORT":      "8080",
		"IS_ACTIVE": "true",
	}))
	if err != nil {
		log.Fatal(err)
	}

	port, _ := env.Get("PORT", typenv.KindInt)
	active, _ := env.Get("IS_ACTIVE", typenv.KindBool)
	fmt.Printf("port=%d active=%t\n", port, active)
	// Output: port=8080 active=true
}

func ExampleEnv_RegisterParser() {
	env, err := typenv.New(typenv.FromMap(map[string]string{
		"RELEASE_DATE": "2024/10/12",
	}))
	if err != nil {
		log.Fatal(err)
	}

	// The custom parser overrides the built-in converter for this name.
	env.RegisterParser("RELEASE_DATE", func(raw string) (any, error) {
		return time.Parse("2006/01/02", raw)
	})

	value, _ := env.Get("RELEASE_DATE", typenv.KindString)
	fmt.Println(value.(time.Time).Format("2006-01-02"))
	// Output: 2024-10-12
}

func ExampleDefault() {
	env, err := typenv.New(typenv.FromMap(nil))
	if err != nil {
		log.Fatal(err)
	}

	// The default is returned verbatim when the name is absent.
	host, _ := env.Str("DB_HOST", typenv.Default("localhost"))
	fmt.Println(host)
	// Output: localhost
}

func ExampleEnv_Map() {
	env, err := typenv.New(typenv.FromMap(map[string]string{
		"LABELS": "tier:web,region:eu",
	}))
	if err != nil {
		log.Fatal(err)
	}

	labels, _ := env.Map("LABELS")
	fmt.Println(labels["tier"], labels["region"])
	// Output: web eu
}
