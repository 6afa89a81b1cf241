package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"github.com/talkifydocs/ingest-backend/pkg/types"

	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

const (
	// FileTableName is the table name for ingestion records.
	FileTableName = "file"
)

// File interface defines the methods for the file table, the durable record
// of every uploaded file and of its ingestion status.
type File interface {
	// CreateFile inserts a new record in PROCESSING status.
	CreateFile(ctx context.Context, file FileModel) (*FileModel, error)
	// GetFileByUID returns the record with the given UID.
	GetFileByUID(ctx context.Context, fileUID types.FileUIDType) (*FileModel, error)
	// UpdateFileStatus moves a PROCESSING record to a terminal status. Writing
	// the status a record already holds is a no-op.
	UpdateFileStatus(ctx context.Context, fileUID types.FileUIDType, update FileStatusUpdate) error
	// ListStaleProcessingFiles returns the PROCESSING records that haven't
	// been written since olderThan, oldest first.
	ListStaleProcessingFiles(ctx context.Context, olderThan time.Time, limit int) ([]FileModel, error)
}

// FileModel is the model for the file table.
type FileModel struct {
	UID types.FileUIDType `gorm:"column:uid;type:uuid;primaryKey" json:"uid"`
	// Key is the storage-layer identifier of the uploaded object.
	Key         string             `gorm:"column:key;size:255;not null" json:"key"`
	Name        string             `gorm:"column:name;size:255;not null" json:"name"`
	OwnerUID    types.OwnerUIDType `gorm:"column:owner_uid;size:255;not null" json:"owner_uid"`
	LocationURL string             `gorm:"column:location_url;not null" json:"location_url"`

	Status        types.FileProcessStatus `gorm:"column:status;size:100;not null" json:"status"`
	StatusMessage string                  `gorm:"column:status_message;not null;default:''" json:"status_message"`
	PageCount     int                     `gorm:"column:page_count;not null;default:0" json:"page_count"`

	CreateTime time.Time `gorm:"column:create_time;not null;autoCreateTime" json:"create_time"`
	UpdateTime time.Time `gorm:"column:update_time;not null;autoUpdateTime" json:"update_time"`
}

// TableName overrides the default table name for GORM
func (FileModel) TableName() string {
	return FileTableName
}

// FileColumns is the columns for the file table
type FileColumns struct {
	UID           string
	Key           string
	Name          string
	OwnerUID      string
	LocationURL   string
	Status        string
	StatusMessage string
	PageCount     string
	CreateTime    string
	UpdateTime    string
}

// FileColumn is the columns for the file table
var FileColumn = FileColumns{
	UID:           "uid",
	Key:           "key",
	Name:          "name",
	OwnerUID:      "owner_uid",
	LocationURL:   "location_url",
	Status:        "status",
	StatusMessage: "status_message",
	PageCount:     "page_count",
	CreateTime:    "create_time",
	UpdateTime:    "update_time",
}

// BeforeCreate is a GORM hook that assigns the UID, the initial status and the
// timestamps of a new record.
func (f *FileModel) BeforeCreate(tx *gorm.DB) error {
	if f.UID.IsNil() {
		uid, err := uuid.NewV4()
		if err != nil {
			return fmt.Errorf("generating file UID: %w", err)
		}
		f.UID = uid
	}

	now := time.Now().UTC()
	if f.CreateTime.IsZero() {
		f.CreateTime = now
	}
	if f.UpdateTime.IsZero() {
		f.UpdateTime = now
	}

	f.Status = types.FileProcessStatusProcessing
	return nil
}

// FileStatusUpdate holds the values written by a status transition.
type FileStatusUpdate struct {
	Status types.FileProcessStatus
	// Message is a user-facing description of the transition.
	Message string
	// PageCount is only written on SUCCESS.
	PageCount int
}

func (r *repository) CreateFile(ctx context.Context, file FileModel) (*FileModel, error) {
	if err := r.db.WithContext(ctx).Create(&file).Error; err != nil {
		return nil, fmt.Errorf("%w: creating file: %w", errdomain.ErrRecordStore, err)
	}
	return &file, nil
}

func (r *repository) GetFileByUID(ctx context.Context, fileUID types.FileUIDType) (*FileModel, error) {
	var file FileModel
	err := r.db.WithContext(ctx).
		Where(FileColumn.UID+" = ?", fileUID).
		First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("file %s: %w", fileUID, errdomain.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: fetching file: %w", errdomain.ErrRecordStore, err)
	}
	return &file, nil
}

// UpdateFileStatus writes the transition with a single conditional UPDATE that
// only matches PROCESSING records. When nothing matches, the current status
// tells a repeated write (no-op) from a conflicting one.
func (r *repository) UpdateFileStatus(ctx context.Context, fileUID types.FileUIDType, update FileStatusUpdate) error {
	if !update.Status.IsTerminal() {
		return fmt.Errorf("%w: %q is not a terminal status", errdomain.ErrInvalidArgument, update.Status)
	}

	values := map[string]any{
		FileColumn.Status:        update.Status,
		FileColumn.StatusMessage: update.Message,
		FileColumn.UpdateTime:    time.Now().UTC(),
	}
	if update.Status == types.FileProcessStatusSuccess {
		values[FileColumn.PageCount] = update.PageCount
	}

	result := r.db.WithContext(ctx).Model(&FileModel{}).
		Where(FileColumn.UID+" = ? AND "+FileColumn.Status+" = ?", fileUID, types.FileProcessStatusProcessing).
		Updates(values)
	if result.Error != nil {
		return fmt.Errorf("%w: updating file status: %w", errdomain.ErrRecordStore, result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	current, err := r.GetFileByUID(ctx, fileUID)
	if err != nil {
		return err
	}
	if current.Status == update.Status {
		return nil
	}

	return fmt.Errorf("%w: file %s is already %s", errdomain.ErrStatusConflict, fileUID, current.Status)
}

func (r *repository) ListStaleProcessingFiles(ctx context.Context, olderThan time.Time, limit int) ([]FileModel, error) {
	var files []FileModel
	err := r.db.WithContext(ctx).
		Where(FileColumn.Status+" = ? AND "+FileColumn.UpdateTime+" < ?", types.FileProcessStatusProcessing, olderThan.UTC()).
		Order(FileColumn.UpdateTime).
		Limit(limit).
		Find(&files).Error
	if err != nil {
		return nil, fmt.Errorf("%w: listing stale files: %w", errdomain.ErrRecordStore, err)
	}
	return files, nil
}
