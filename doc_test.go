package trie

import "fmt"

func Example() {
	t := FromWords("foo", "food", "foods", "bar")

	fmt.Println(t.Search("food", 0))
	fmt.Println(t.Search("food", 1))

	// Output:
	// [foo food]
	// [foo food foods]
}

func Example_wildcardsOnly() {
	t := FromWords("foo", "food", "foods", "bar")

	// An empty rack with three wildcards reaches every word within
	// three letters of the root.
	fmt.Println(t.Search("", 3))

	// Output:
	// [foo bar]
}

func Example_normalisation() {
	t := New().CaseInsensitive().WithNormalisation()
	t.Insert("Jürgen")

	fmt.Println(t.Search("JÜRGEN", 0))

	// Output:
	// [jurgen]
}
