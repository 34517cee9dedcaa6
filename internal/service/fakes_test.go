package service

import (
	"Showreel/internal/model"
	"context"
	"sort"
	"time"

	"gorm.io/gorm"
)

// 内存版仓储实现，供本包单元测试使用

type fakeReelRepo struct {
	reels         map[uint64]*model.Reel
	items         map[uint64][]*model.ReelMediaItem
	nextReelID    uint64
	takenLinks    map[string]bool
	alwaysTaken   bool
	linkChecks    int
	deletedReels  []uint64
	updatedFields map[uint64]map[string]interface{}
}

func newFakeReelRepo() *fakeReelRepo {
	return &fakeReelRepo{
		reels:         make(map[uint64]*model.Reel),
		items:         make(map[uint64][]*model.ReelMediaItem),
		takenLinks:    make(map[string]bool),
		updatedFields: make(map[uint64]map[string]interface{}),
	}
}

func (f *fakeReelRepo) CreateReel(_ context.Context, reel *model.Reel, items []*model.ReelMediaItem) error {
	f.nextReelID++
	reel.ID = f.nextReelID
	f.reels[reel.ID] = reel
	for _, item := range items {
		item.ReelID = reel.ID
	}
	f.items[reel.ID] = items
	f.takenLinks[reel.ShortLink] = true
	return nil
}

func (f *fakeReelRepo) GetReel(_ context.Context, id uint64) (*model.Reel, error) {
	reel, ok := f.reels[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return reel, nil
}

func (f *fakeReelRepo) GetReelByShortLink(_ context.Context, shortLink string) (*model.Reel, error) {
	for _, reel := range f.reels {
		if reel.ShortLink == shortLink {
			return reel, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReelRepo) ListReels(_ context.Context) ([]*model.Reel, error) {
	res := make([]*model.Reel, 0, len(f.reels))
	for _, reel := range f.reels {
		res = append(res, reel)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (f *fakeReelRepo) ShortLinkExists(_ context.Context, shortLink string) (bool, error) {
	f.linkChecks++
	if f.alwaysTaken {
		return true, nil
	}
	return f.takenLinks[shortLink], nil
}

func (f *fakeReelRepo) UpdateReelFields(_ context.Context, id uint64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	f.updatedFields[id] = fields
	reel := f.reels[id]
	if title, ok := fields["title"].(string); ok {
		reel.Title = title
	}
	if status, ok := fields["status"].(string); ok {
		reel.Status = status
	}
	return nil
}

func (f *fakeReelRepo) ReplaceReelItems(_ context.Context, reelID uint64, items []*model.ReelMediaItem) error {
	for _, item := range items {
		item.ReelID = reelID
	}
	f.items[reelID] = items
	return nil
}

func (f *fakeReelRepo) DeleteReelCascade(_ context.Context, reelID uint64) error {
	delete(f.reels, reelID)
	delete(f.items, reelID)
	f.deletedReels = append(f.deletedReels, reelID)
	return nil
}

func (f *fakeReelRepo) ListAllItems(_ context.Context) ([]*model.ReelMediaItem, error) {
	var res []*model.ReelMediaItem
	for _, items := range f.items {
		res = append(res, items...)
	}
	return res, nil
}

func (f *fakeReelRepo) GetReelItems(_ context.Context, reelID uint64, limit int) ([]*model.ReelMediaItem, error) {
	items := append([]*model.ReelMediaItem(nil), f.items[reelID]...)
	sort.Slice(items, func(i, j int) bool { return items[i].DisplayOrder < items[j].DisplayOrder })
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (f *fakeReelRepo) ListItemsByMediaItem(_ context.Context, mediaItemID uint64) ([]*model.ReelMediaItem, error) {
	var res []*model.ReelMediaItem
	for _, items := range f.items {
		for _, item := range items {
			if item.MediaItemID == mediaItemID {
				res = append(res, item)
			}
		}
	}
	return res, nil
}

func (f *fakeReelRepo) DeleteItemsByMediaItem(_ context.Context, mediaItemID uint64) error {
	for reelID, items := range f.items {
		kept := items[:0]
		for _, item := range items {
			if item.MediaItemID != mediaItemID {
				kept = append(kept, item)
			}
		}
		f.items[reelID] = kept
	}
	return nil
}

func (f *fakeReelRepo) CountReelItems(_ context.Context, reelID uint64) (int64, error) {
	return int64(len(f.items[reelID])), nil
}

func (f *fakeReelRepo) ListRecentReels(_ context.Context, limit int) ([]*model.Reel, error) {
	res := make([]*model.Reel, 0, len(f.reels))
	for _, reel := range f.reels {
		res = append(res, reel)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

type fakeReelViewRepo struct {
	views []*model.ReelView
}

func (f *fakeReelViewRepo) CreateView(_ context.Context, view *model.ReelView) error {
	f.views = append(f.views, view)
	return nil
}

func (f *fakeReelViewRepo) ListAllViews(_ context.Context) ([]*model.ReelView, error) {
	return f.views, nil
}

func (f *fakeReelViewRepo) ListViewsByReel(_ context.Context, reelID uint64) ([]*model.ReelView, error) {
	var res []*model.ReelView
	for _, view := range f.views {
		if view.ReelID == reelID {
			res = append(res, view)
		}
	}
	return res, nil
}

func (f *fakeReelViewRepo) ListViewsByTypeInRange(_ context.Context, eventType string, start, end time.Time) ([]*model.ReelView, error) {
	var res []*model.ReelView
	for _, view := range f.views {
		if view.EventType != eventType {
			continue
		}
		if view.CreatedAt.Before(start) || view.CreatedAt.After(end) {
			continue
		}
		res = append(res, view)
	}
	return res, nil
}

type fakeArtistRepo struct {
	artists map[string]*model.Artist
}

func newFakeArtistRepo() *fakeArtistRepo {
	return &fakeArtistRepo{artists: make(map[string]*model.Artist)}
}

func (f *fakeArtistRepo) CreateArtist(_ context.Context, artist *model.Artist) error {
	artist.ID = uint64(len(f.artists) + 1)
	f.artists[artist.Name] = artist
	return nil
}

func (f *fakeArtistRepo) GetArtist(_ context.Context, id uint64) (*model.Artist, error) {
	for _, artist := range f.artists {
		if artist.ID == id {
			clone := *artist
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeArtistRepo) GetArtistsByNames(_ context.Context, names []string) ([]*model.Artist, error) {
	var res []*model.Artist
	for _, name := range names {
		if artist, ok := f.artists[name]; ok {
			res = append(res, artist)
		}
	}
	return res, nil
}

func (f *fakeArtistRepo) ListArtists(_ context.Context) ([]*model.Artist, error) {
	var res []*model.Artist
	for _, artist := range f.artists {
		res = append(res, artist)
	}
	return res, nil
}

func (f *fakeArtistRepo) UpdateArtistFields(_ context.Context, id uint64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	for name, artist := range f.artists {
		if artist.ID != id {
			continue
		}
		if v, ok := fields["name"].(string); ok && v != name {
			delete(f.artists, name)
			artist.Name = v
			f.artists[v] = artist
		}
		if v, ok := fields["description"].(string); ok {
			artist.Description = &v
		}
		if v, ok := fields["photo_gcs_path"].(string); ok {
			artist.PhotoGcsPath = &v
		}
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeArtistRepo) DeleteArtist(_ context.Context, id uint64) error {
	for name, artist := range f.artists {
		if artist.ID == id {
			delete(f.artists, name)
			return nil
		}
	}
	return nil
}

func (f *fakeArtistRepo) ListPhotoPaths(_ context.Context) ([]string, error) {
	var res []string
	for _, artist := range f.artists {
		if artist.PhotoGcsPath != nil && *artist.PhotoGcsPath != "" {
			res = append(res, *artist.PhotoGcsPath)
		}
	}
	return res, nil
}

type fakeMediaItemRepo struct {
	items     map[uint64]*model.MediaItem
	deleted   []uint64
	deleteErr error
}

func newFakeMediaItemRepo() *fakeMediaItemRepo {
	return &fakeMediaItemRepo{items: make(map[uint64]*model.MediaItem)}
}

func (f *fakeMediaItemRepo) CreateMediaItem(_ context.Context, item *model.MediaItem) error {
	item.ID = uint64(len(f.items) + 1)
	f.items[item.ID] = item
	return nil
}

func (f *fakeMediaItemRepo) GetMediaItem(_ context.Context, id uint64) (*model.MediaItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	// 返回副本，存量数据只能通过 UpdateMediaItemFields 改动
	clone := *item
	return &clone, nil
}

func (f *fakeMediaItemRepo) GetMediaItemByIds(_ context.Context, ids []uint64) ([]*model.MediaItem, error) {
	var res []*model.MediaItem
	for _, id := range ids {
		if item, ok := f.items[id]; ok {
			res = append(res, item)
		}
	}
	return res, nil
}

func (f *fakeMediaItemRepo) ListMediaItems(_ context.Context) ([]*model.MediaItem, error) {
	var res []*model.MediaItem
	for _, item := range f.items {
		res = append(res, item)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (f *fakeMediaItemRepo) UpdateMediaItemFields(_ context.Context, id uint64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	item, ok := f.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for col, v := range fields {
		switch col {
		case "title":
			item.Title = v.(string)
		case "client":
			item.Client = v.(string)
		case "artists":
			item.Artists = v.(string)
		case "craft":
			item.Craft = v.(string)
		case "category":
			item.Category = v.(string)
		case "content_type":
			item.ContentType = v.(string)
		case "video_gcs_path":
			item.VideoGcsPath = v.(string)
		case "preview_gcs_path":
			item.PreviewGcsPath = v.(string)
		case "video_hls_path":
			hls := v.(string)
			item.VideoHlsPath = &hls
		case "allow_download":
			item.AllowDownload = v.(bool)
		case "description":
			item.Description = v.(string)
		}
	}
	return nil
}

func (f *fakeMediaItemRepo) DeleteMediaItem(_ context.Context, id uint64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.items, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeMediaItemRepo) ListStoragePaths(_ context.Context) ([]string, error) {
	var res []string
	for _, item := range f.items {
		if item.VideoGcsPath != "" {
			res = append(res, item.VideoGcsPath)
		}
		if item.PreviewGcsPath != "" {
			res = append(res, item.PreviewGcsPath)
		}
		if item.VideoHlsPath != nil && *item.VideoHlsPath != "" {
			res = append(res, *item.VideoHlsPath)
		}
	}
	return res, nil
}

type fakeObjectStorage struct {
	removedObjects  []string
	removedPrefixes []string
	removeErr       error
}

func (f *fakeObjectStorage) PresignUpload(_ context.Context, fileName, fileType, destination string) (string, string, error) {
	return "https://signed.example/" + fileName, destination + "/" + fileName, nil
}

func (f *fakeObjectStorage) ResolveReadURLs(_ context.Context, objectPaths []string) map[string]*string {
	res := make(map[string]*string, len(objectPaths))
	for _, p := range objectPaths {
		url := "https://signed.example/" + p
		res[p] = &url
	}
	return res
}

func (f *fakeObjectStorage) RemoveObject(_ context.Context, objectPath string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removedObjects = append(f.removedObjects, objectPath)
	return nil
}

func (f *fakeObjectStorage) RemovePrefix(_ context.Context, prefix string) error {
	f.removedPrefixes = append(f.removedPrefixes, prefix)
	return nil
}

type fakeFeaturePdfRepo struct {
	passwords []*model.FeaturePdfPassword
	files     []*model.FeaturePdfFile
	stats     []*model.PdfFileStat
}

func (f *fakeFeaturePdfRepo) CreatePassword(_ context.Context, password *model.FeaturePdfPassword) error {
	password.ID = uint64(len(f.passwords) + 1)
	f.passwords = append(f.passwords, password)
	return nil
}

func (f *fakeFeaturePdfRepo) GetCurrentPassword(_ context.Context) (*model.FeaturePdfPassword, error) {
	if len(f.passwords) == 0 {
		return nil, nil
	}
	latest := f.passwords[0]
	for _, p := range f.passwords[1:] {
		if p.CreatedAt.After(latest.CreatedAt) {
			latest = p
		}
	}
	return latest, nil
}

func (f *fakeFeaturePdfRepo) CreateFile(_ context.Context, file *model.FeaturePdfFile) error {
	file.ID = uint64(len(f.files) + 1)
	f.files = append(f.files, file)
	return nil
}

func (f *fakeFeaturePdfRepo) GetCurrentFile(_ context.Context) (*model.FeaturePdfFile, error) {
	if len(f.files) == 0 {
		return nil, nil
	}
	latest := f.files[0]
	for _, file := range f.files[1:] {
		if file.CreatedAt.After(latest.CreatedAt) {
			latest = file
		}
	}
	return latest, nil
}

func (f *fakeFeaturePdfRepo) CreateStat(_ context.Context, stat *model.PdfFileStat) error {
	f.stats = append(f.stats, stat)
	return nil
}

func (f *fakeFeaturePdfRepo) CountStats(_ context.Context, fileID uint64) (int64, error) {
	var count int64
	for _, stat := range f.stats {
		if stat.FileID == fileID {
			count++
		}
	}
	return count, nil
}

func (f *fakeFeaturePdfRepo) ListFilePaths(_ context.Context) ([]string, error) {
	var res []string
	for _, file := range f.files {
		res = append(res, file.GcsPath)
	}
	return res, nil
}
