package trellodoc

// Ranks of the fixed top-level keys of the descriptor document. The method
// rank counter starts above the highest of these so method entries always
// sort after the fixed fields.
const (
	RankName = iota
	RankVersion
	RankBaseURL
	RankFormats
	RankMethods
)

// Ranks of the fixed keys inside a method record. The Method struct declares
// its fields in this order so encoding/json emits them without a custom
// marshaler.
const (
	RankPath = iota
	RankMethod
	RankRequiredParams
	RankOptionalParams
	RankParamInfos
)

// Ranker assigns each canonical method name a monotonically increasing rank
// used purely for output ordering. A rank is assigned at first sight and
// never reused or reassigned.
type Ranker struct {
	next  int
	ranks map[string]int
}

// NewRanker returns a Ranker whose counter starts just above the fixed
// top-level key ranks.
func NewRanker() *Ranker {
	return &Ranker{
		next:  RankMethods + 1,
		ranks: make(map[string]int),
	}
}

// Rank returns the rank for name, assigning the next counter value on first
// sight.
func (r *Ranker) Rank(name string) int {
	if rank, ok := r.ranks[name]; ok {
		return rank
	}
	rank := r.next
	r.next++
	r.ranks[name] = rank
	return rank
}
