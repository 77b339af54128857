package handler

import (
	"net/http"

	adminDto "brik.community/portal/internal/modules/admin/dto"
	adminService "brik.community/portal/internal/modules/admin/service"
	projectDto "brik.community/portal/internal/modules/project/dto"
	commonDto "brik.community/portal/pkg/dto"
	"brik.community/portal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminService adminService.AdminService
}

func NewAdminHandler(adminService adminService.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) CreateMember(c *gin.Context) {
	var input adminDto.CreateMemberInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, err)
		return
	}

	var avatar *commonDto.AvatarFile
	if fileHeader, err := c.FormFile("avatar"); err == nil && fileHeader != nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read avatar"})
			return
		}
		defer file.Close()

		avatar = &commonDto.AvatarFile{
			Reader:   file,
			FileName: fileHeader.Filename,
		}
	}

	resp, err := h.adminService.CreateMember(c.Request.Context(), input, avatar)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AdminHandler) GetAllMembers(c *gin.Context) {
	var filter commonDto.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, err)
		return
	}

	members, total, err := h.adminService.GetAllMembers(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter.Normalize()
	c.JSON(http.StatusOK, gin.H{
		"data": members,
		"meta": commonDto.BuildPaginationMeta(filter.Page, filter.Limit, total),
	})
}

func (h *AdminHandler) UpdateMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var input adminDto.UpdateMemberInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, err)
		return
	}

	resp, err := h.adminService.UpdateMember(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) DeleteMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := h.adminService.DeleteMember(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted successfully"})
}

func (h *AdminHandler) AddProjectMember(c *gin.Context) {
	var req projectDto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	adminID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.adminService.AddProjectMember(c.Request.Context(), adminID, req); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "project member added"})
}

func (h *AdminHandler) RemoveProjectMember(c *gin.Context) {
	var req projectDto.RemoveMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.adminService.RemoveProjectMember(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "project member removed"})
}
