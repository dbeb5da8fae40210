package bench

import (
	"testing"

	"github.com/appnet-org/declbench/pkg/entropy"
	"github.com/appnet-org/declbench/pkg/payload"
)

var (
	userSink []payload.UserData
	treeSink []payload.RootModel
)

func BenchmarkUserExplicit(b *testing.B) {
	gen := payload.NewGenerator(entropy.New(1))
	users := make([]payload.UserData, 0, b.N)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var user payload.UserData = gen.User(i)
		users = append(users, user)
	}
	userSink = users
}

func BenchmarkUserImplicit(b *testing.B) {
	gen := payload.NewGenerator(entropy.New(1))
	users := make([]payload.UserData, 0, b.N)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		user := gen.User(i)
		users = append(users, user)
	}
	userSink = users
}

func BenchmarkTreeExplicit(b *testing.B) {
	gen := payload.NewGenerator(entropy.New(1))
	trees := make([]payload.RootModel, 0, b.N)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var tree payload.RootModel = gen.Tree()
		trees = append(trees, tree)
	}
	treeSink = trees
}

func BenchmarkTreeImplicit(b *testing.B) {
	gen := payload.NewGenerator(entropy.New(1))
	trees := make([]payload.RootModel, 0, b.N)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := gen.Tree()
		trees = append(trees, tree)
	}
	treeSink = trees
}
