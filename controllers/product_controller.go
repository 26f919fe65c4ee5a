package controllers

import (
	"net/http"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Repo *repository.ProductRepository
}

func NewProductController(repo *repository.ProductRepository) *ProductController {
	return &ProductController{Repo: repo}
}

type productOut struct {
	ID      uint                  `json:"id"`
	Name    string                `json:"name"`
	Price   int64                 `json:"price"`
	Options entity.ProductOptions `json:"options"`
}

func toProductOut(p entity.Product) productOut {
	return productOut{ID: p.ID, Name: p.Name, Price: p.Price, Options: p.Options.Data()}
}

// GET /product/
func (pc *ProductController) List(c *gin.Context) {
	products, err := pc.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	out := make([]productOut, 0, len(products))
	for _, p := range products {
		out = append(out, toProductOut(p))
	}
	c.JSON(http.StatusOK, out)
}

// GET /product/:id
func (pc *ProductController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := pc.Repo.Get(uint(id))
	if err != nil {
		resp.NotFound(c, "product not found")
		return
	}
	c.JSON(http.StatusOK, toProductOut(*p))
}
