package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courseplatform/internal/domain"
	"courseplatform/internal/usecase"
)

type CourseHandler struct {
	courses *usecase.CourseUseCase
}

func NewCourseHandler(courses *usecase.CourseUseCase) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// GET /api/v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courses.List(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "courses": courses})
}

// POST /api/v1/course/new (multipart: title, description, category, createdBy + file)
func (h *CourseHandler) Create(c *gin.Context) {
	in := usecase.CreateCourseInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		CreatedBy:   c.PostForm("createdBy"),
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, domain.NewValidation("Please add all fields"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	if _, err := h.courses.Create(c, in, file); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Course created successfully, you can add lectures now"})
}

// GET /api/v1/course/:id
func (h *CourseHandler) GetLectures(c *gin.Context) {
	courseID, err := parseID(c.Param("id"), "Course")
	if err != nil {
		respondError(c, err)
		return
	}

	lectures, err := h.courses.GetLectures(c, courseID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "lectures": lectures})
}

// POST /api/v1/course/:id (multipart: title, description + file)
func (h *CourseHandler) AddLecture(c *gin.Context) {
	courseID, err := parseID(c.Param("id"), "Course")
	if err != nil {
		respondError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, domain.NewValidation("Please add video file"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	_, err = h.courses.AddLecture(c, courseID, c.PostForm("title"), c.PostForm("description"), file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Lecture added in course successfully"})
}

// DELETE /api/v1/lecture?courseId=&lectureId=
func (h *CourseHandler) DeleteLecture(c *gin.Context) {
	courseID, err := parseID(c.Query("courseId"), "Course")
	if err != nil {
		respondError(c, err)
		return
	}
	lectureID, err := parseID(c.Query("lectureId"), "Lecture")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.courses.RemoveLecture(c, courseID, lectureID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Lecture deleted successfully"})
}

// DELETE /api/v1/course/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	courseID, err := parseID(c.Param("id"), "Course")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.courses.Delete(c, courseID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Course deleted successfully"})
}
