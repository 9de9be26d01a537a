package addressbook

type Collator interface {
	CompareString(a, b string) int
}
