package plugins

import "github.com/Yhnlvy/panther/internal/testset"

// DefaultProfile excludes P106, the deprecated eval duplicate kept only
// for configs that still reference it explicitly.
var DefaultProfile = testset.Profile{Exclude: []string{"P106"}}

func init() {
	testset.Register(serverSideInjection())
	testset.Register(hardcodedSQLExpressions())
	testset.Register(nosqlInjection())
	testset.Register(neverEverUseEval())
	for _, e := range blacklistEntries {
		testset.Register(newTest(e))
	}
}
