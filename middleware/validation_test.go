package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestValidateContentType(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ValidateContentType("multipart/form-data"))
	router.POST("/upload", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "ok"})
	})
	router.GET("/upload", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "ok"})
	})

	// POST with the expected content type
	w1 := httptest.NewRecorder()
	req1, _ := http.NewRequest("POST", "/upload", bytes.NewBufferString("data"))
	req1.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	router.ServeHTTP(w1, req1)
	assert.Equal(t, http.StatusOK, w1.Code)

	// POST with the wrong content type
	w2 := httptest.NewRecorder()
	req2, _ := http.NewRequest("POST", "/upload", bytes.NewBufferString("{}"))
	req2.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusBadRequest, w2.Code)

	// GET requests skip validation
	w3 := httptest.NewRecorder()
	req3, _ := http.NewRequest("GET", "/upload", nil)
	router.ServeHTTP(w3, req3)
	assert.Equal(t, http.StatusOK, w3.Code)
}

func TestMaxRequestSize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(MaxRequestSize(64))
	router.POST("/upload", func(c *gin.Context) {
		if _, err := c.GetRawData(); err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "too large"})
			return
		}
		c.JSON(200, gin.H{"message": "ok"})
	})

	w1 := httptest.NewRecorder()
	req1, _ := http.NewRequest("POST", "/upload", bytes.NewBufferString("small body"))
	router.ServeHTTP(w1, req1)
	assert.Equal(t, http.StatusOK, w1.Code)

	w2 := httptest.NewRecorder()
	req2, _ := http.NewRequest("POST", "/upload", bytes.NewBuffer(make([]byte, 4096)))
	router.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w2.Code)
}
