package routes

import (
	"net/http"

	_ "github.com/just-nibble/repo-explorer/docs"
	"github.com/just-nibble/repo-explorer/internal/adapters/http/handlers"
	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(explorer handlers.Explorer) *http.ServeMux {
	repoHandler := handlers.NewRepositoryHandler(explorer)
	commitHandler := handlers.NewCommitHandler(explorer)

	router := http.NewServeMux()
	router.HandleFunc("GET /repositories", repoHandler.TopRepositories)
	router.HandleFunc("GET /repositories/summary", repoHandler.Summary)
	router.HandleFunc("GET /forks", repoHandler.Forks)
	router.HandleFunc("GET /commits", commitHandler.GetCommitsByRepo)
	router.HandleFunc("GET /commits/{sha}", commitHandler.GetCommit)
	// Serve Swagger documentation
	router.HandleFunc("/swagger/", httpSwagger.WrapHandler)
	return router
}
