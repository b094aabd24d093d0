package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func pageFor(query string) Page {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/hotels?"+query, nil)
	return FromQuery(c)
}

func TestFromQuery(t *testing.T) {
	assert.Equal(t, Page{Page: 1, Limit: 20, Offset: 0}, pageFor(""))
	assert.Equal(t, Page{Page: 3, Limit: 10, Offset: 20}, pageFor("page=3&limit=10"))
	assert.Equal(t, Page{Page: 1, Limit: 20, Offset: 0}, pageFor("page=-1&limit=500"))
	assert.Equal(t, Page{Page: 1, Limit: 20, Offset: 0}, pageFor("page=abc&limit=x"))
}

func TestMeta(t *testing.T) {
	meta := Page{Page: 2, Limit: 10, Offset: 10}.Meta(25)
	assert.Equal(t, 3, meta["total_pages"])
	assert.Equal(t, int64(25), meta["total"])
}
