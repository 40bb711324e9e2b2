package ids_test

import (
	"fmt"
	"log"

	"github.com/ClickerMonkey/nage/ids"
)

// Example_interning demonstrates interning strings and resolving them back.
func Example_interning() {
	in, err := ids.New()
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	apple := in.ID("apple")
	again := in.ID("apple")

	fmt.Println(apple.UID() == again.UID())
	fmt.Println(apple.String())
	// Output:
	// true
	// apple
}

// Example_denseMap demonstrates a component store with contiguous values.
func Example_denseMap() {
	in, err := ids.New()
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	health := ids.NewDenseMap[int, ids.UID, uint16]()
	health.Set(in.ID("goblin"), 30)
	health.Set(in.ID("orc"), 80)
	health.Set(in.ID("troll"), 120)

	health.Remove(in.ID("orc"), true)

	fmt.Println(health.Values())
	fmt.Println(health.Get(in.ID("troll")))
	// Output:
	// [30 120]
	// 120
}

// Example_probing demonstrates read-only lookups that never intern.
func Example_probing() {
	in, err := ids.New()
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	tags := ids.NewSet()
	tags.Add(in.ID("hostile"))

	fmt.Println(tags.Has(in.Maybe("hostile")))
	fmt.Println(tags.Has(in.Maybe("friendly")))
	fmt.Println(in.Len())
	// Output:
	// true
	// false
	// 2
}
