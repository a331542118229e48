package router

import (
	"github.com/deppfellow/pokemon-review/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerCategoryRoutes(api *echo.Group, h *handler.CategoryHandler) {
	categories := api.Group("/category")
	categories.GET("", h.GetCategories)
	categories.GET("/:categoryId", h.GetCategory)
	categories.GET("/pokemon/:categoryId", h.GetPokemonsByCategory)
	categories.POST("", h.CreateCategory)
	categories.PUT("/:categoryId", h.UpdateCategory)
	categories.DELETE("/:categoryId", h.DeleteCategory)
}

func registerPokemonRoutes(api *echo.Group, h *handler.PokemonHandler) {
	pokemon := api.Group("/pokemon")
	pokemon.GET("", h.GetPokemons)
	pokemon.GET("/:pokeId", h.GetPokemon)
	pokemon.GET("/:pokeId/rating", h.GetPokemonRating)
	pokemon.POST("", h.CreatePokemon)
	pokemon.PUT("/:pokeId", h.UpdatePokemon)
	pokemon.DELETE("/:pokeId", h.DeletePokemon)
}

func registerReviewerRoutes(api *echo.Group, h *handler.ReviewerHandler) {
	reviewers := api.Group("/reviewer")
	reviewers.GET("", h.GetReviewers)
	reviewers.GET("/:reviewerId", h.GetReviewer)
	reviewers.GET("/:reviewerId/reviews", h.GetReviewsByReviewer)
	reviewers.POST("", h.CreateReviewer)
	reviewers.PUT("/:reviewerId", h.UpdateReviewer)
	reviewers.DELETE("/:reviewerId", h.DeleteReviewer)
}

func registerReviewRoutes(api *echo.Group, h *handler.ReviewHandler) {
	reviews := api.Group("/review")
	reviews.GET("", h.GetReviews)
	reviews.GET("/:reviewId", h.GetReview)
	reviews.GET("/pokemon/:pokeId", h.GetReviewsOfAPokemon)
	reviews.POST("", h.CreateReview)
	reviews.PUT("/:reviewId", h.UpdateReview)
	reviews.DELETE("/:reviewId", h.DeleteReview)
	reviews.DELETE("/reviewer/:reviewerId", h.DeleteReviewsByReviewer)
}

func registerOwnerRoutes(api *echo.Group, h *handler.OwnerHandler) {
	owners := api.Group("/owner")
	owners.GET("", h.GetOwners)
	owners.GET("/:ownerId", h.GetOwner)
	owners.GET("/:ownerId/pokemon", h.GetPokemonByOwner)
	owners.GET("/pokemon/:pokeId", h.GetOwnersOfAPokemon)
	owners.POST("", h.CreateOwner)
	owners.PUT("/:ownerId", h.UpdateOwner)
	owners.DELETE("/:ownerId", h.DeleteOwner)
}

func registerCountryRoutes(api *echo.Group, h *handler.CountryHandler) {
	countries := api.Group("/country")
	countries.GET("", h.GetCountries)
	countries.GET("/:countryId", h.GetCountry)
	countries.GET("/owners/:ownerId", h.GetCountryOfAnOwner)
	countries.GET("/:countryId/owners", h.GetOwnersFromACountry)
	countries.POST("", h.CreateCountry)
	countries.PUT("/:countryId", h.UpdateCountry)
	countries.DELETE("/:countryId", h.DeleteCountry)
}
