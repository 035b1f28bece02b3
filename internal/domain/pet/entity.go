package pet

// Pet is the stored resource. The id is chosen by the client.
type Pet struct {
	ID   int64
	Name string
	Tag  *string
}
