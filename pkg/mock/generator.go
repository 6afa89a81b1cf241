package mock

//go:generate minimock -g -i github.com/talkifydocs/ingest-backend/pkg/service.Service -o ./ -s "_mock.gen.go"
//go:generate minimock -g -i github.com/talkifydocs/ingest-backend/pkg/repository.Repository -o ./ -s "_mock.gen.go"
//go:generate minimock -g -i github.com/talkifydocs/ingest-backend/pkg/ai.Embedder -o ./ -s "_mock.gen.go"
//go:generate minimock -g -i github.com/talkifydocs/ingest-backend/pkg/repository/object.Fetcher -o ./ -s "_mock.gen.go"
