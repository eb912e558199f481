package domain

// Interest is a user-selectable topic shown on dating profiles. Rows live in
// the backing store; this codebase only reads them.
type Interest struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}
