package commitment

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Trie interface {
		Insert(key, value []byte) error
		Root() []byte
	}
)
