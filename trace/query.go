package trace

type (
	// Query traces one result cursor's row advances and release.
	Query struct {
		OnNextRow func(QueryNextRowStartInfo) func(QueryNextRowDoneInfo)
		OnClose   func(QueryCloseStartInfo) func(QueryCloseDoneInfo)
	}

	QueryNextRowStartInfo struct{}

	QueryNextRowDoneInfo struct {
		HasRow bool
		Error  error
	}

	QueryCloseStartInfo struct{}

	QueryCloseDoneInfo struct {
		Error error
	}
)

// Compose returns a Query firing both t's and x's hooks.
func (t Query) Compose(x Query) (ret Query) {
	ret.OnNextRow = compose(t.OnNextRow, x.OnNextRow)
	ret.OnClose = compose(t.OnClose, x.OnClose)

	return ret
}
