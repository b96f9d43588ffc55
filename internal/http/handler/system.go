package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Chat App API!"})
}

func Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "online"})
}
