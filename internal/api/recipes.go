package api

import (
	"net/url"
	"strconv"
)

// ExtractRecipe asks the AI backend to extract a recipe from a cooking
// video. The result is not saved; pass it to SaveRecipe to keep it.
func (c *Client) ExtractRecipe(videoURL string) (*Recipe, error) {
	body := map[string]string{"video_url": videoURL}
	var recipe Recipe
	if err := c.Post("/extract", body, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// SaveRecipe stores a recipe in the user's cookbook.
func (c *Client) SaveRecipe(r *Recipe) (*Recipe, error) {
	var saved Recipe
	if err := c.Post("/recipes/", r, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// Recipes lists the user's saved recipes.
func (c *Client) Recipes() ([]Recipe, error) {
	var recipes []Recipe
	if err := c.Get("/recipes/", nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// ExploreRecipes searches public recipes. An empty query lists all.
func (c *Client) ExploreRecipes(query string) ([]Recipe, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	var recipes []Recipe
	if err := c.Get("/recipes/explore", params, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// Recipe fetches a single recipe by id.
func (c *Client) Recipe(id int) (*Recipe, error) {
	var recipe Recipe
	if err := c.Get("/recipes/"+strconv.Itoa(id), nil, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// DeleteRecipe removes a recipe from the cookbook.
func (c *Client) DeleteRecipe(id int) error {
	return c.Delete("/recipes/"+strconv.Itoa(id), nil)
}

// SetRecipePublic flips a recipe's public/private flag.
func (c *Client) SetRecipePublic(id int, public bool) (*Recipe, error) {
	body := map[string]bool{"is_public": public}
	var recipe Recipe
	if err := c.Patch("/recipes/"+strconv.Itoa(id), body, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}
