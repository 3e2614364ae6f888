package mongo

import (
	"context"
	"errors"
	"regexp"

	"github.com/docfold/docfold/pkg/domain/model"
	"github.com/docfold/docfold/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type wsDoc struct {
	ID            bson.ObjectID `bson:"_id,omitempty"`
	Name          string        `bson:"name"`
	Token         string        `bson:"gh_access_token,omitempty"`
	RepoFullName  string        `bson:"gh_repo_full_name,omitempty"`
	DefaultBranch string        `bson:"gh_default_branch,omitempty"`
}

func (x *wsDoc) model() *model.Workspace {
	return &model.Workspace{
		ID:            types.WorkspaceID(x.ID.Hex()),
		Name:          x.Name,
		Token:         types.GitHubToken(x.Token),
		RepoFullName:  x.RepoFullName,
		DefaultBranch: x.DefaultBranch,
	}
}

type pageDoc struct {
	ID          bson.ObjectID   `bson:"_id,omitempty"`
	Title       string          `bson:"title"`
	Content     string          `bson:"content"`
	FolderPath  string          `bson:"folder_path"`
	Tags        []string        `bson:"tags"`
	WorkspaceID string          `bson:"workspace_id"`
	GitPath     string          `bson:"git_path,omitempty"`
	Lock        *model.PageLock `bson:"lock,omitempty"`
}

func (x *pageDoc) model() *model.Page {
	tags := x.Tags
	if tags == nil {
		tags = []string{}
	}
	return &model.Page{
		ID:          types.PageID(x.ID.Hex()),
		Title:       x.Title,
		Content:     x.Content,
		FolderPath:  x.FolderPath,
		Tags:        tags,
		WorkspaceID: types.WorkspaceID(x.WorkspaceID),
		GitPath:     x.GitPath,
		Lock:        x.Lock,
	}
}

func toObjectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, goerr.Wrap(types.ErrInvalidID, "malformed identifier", goerr.V("id", id))
	}
	return oid, nil
}

// Workspace operations

func (r *docRepository) CreateWorkspace(ctx context.Context, ws *model.Workspace) (types.WorkspaceID, error) {
	doc := &wsDoc{
		Name:          ws.Name,
		Token:         string(ws.Token),
		RepoFullName:  ws.RepoFullName,
		DefaultBranch: ws.DefaultBranch,
	}

	res, err := r.db.Collection(collWorkspace).InsertOne(ctx, doc)
	if err != nil {
		return "", goerr.Wrap(err, "failed to insert workspace")
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", goerr.New("unexpected inserted ID type", goerr.V("id", res.InsertedID))
	}

	return types.WorkspaceID(oid.Hex()), nil
}

func (r *docRepository) GetWorkspace(ctx context.Context, id types.WorkspaceID) (*model.Workspace, error) {
	oid, err := toObjectID(string(id))
	if err != nil {
		return nil, err
	}

	var doc wsDoc
	if err := r.db.Collection(collWorkspace).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, goerr.Wrap(types.ErrNotFound, "workspace not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to find workspace", goerr.V("id", id))
	}

	return doc.model(), nil
}

func (r *docRepository) ListWorkspaces(ctx context.Context, limit int) ([]*model.Workspace, error) {
	cur, err := r.db.Collection(collWorkspace).Find(ctx, bson.M{},
		options.Find().SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list workspaces")
	}

	var docs []wsDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, goerr.Wrap(err, "failed to decode workspaces")
	}

	workspaces := make([]*model.Workspace, 0, len(docs))
	for i := range docs {
		workspaces = append(workspaces, docs[i].model())
	}

	return workspaces, nil
}

func (r *docRepository) UpdateWorkspace(ctx context.Context, id types.WorkspaceID, update *model.WorkspaceUpdate) error {
	oid, err := toObjectID(string(id))
	if err != nil {
		return err
	}

	set := bson.M{}
	if update.Token != nil {
		set["gh_access_token"] = string(*update.Token)
	}
	if update.RepoFullName != nil {
		set["gh_repo_full_name"] = *update.RepoFullName
	}
	if update.DefaultBranch != nil {
		set["gh_default_branch"] = *update.DefaultBranch
	}
	if len(set) == 0 {
		return nil
	}

	res, err := r.db.Collection(collWorkspace).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return goerr.Wrap(err, "failed to update workspace", goerr.V("id", id))
	}
	if res.MatchedCount == 0 {
		return goerr.Wrap(types.ErrNotFound, "workspace not found", goerr.V("id", id))
	}

	return nil
}

// Page operations

func (r *docRepository) CreatePage(ctx context.Context, page *model.Page) (types.PageID, error) {
	doc := &pageDoc{
		Title:       page.Title,
		Content:     page.Content,
		FolderPath:  page.FolderPath,
		Tags:        page.Tags,
		WorkspaceID: string(page.WorkspaceID),
		GitPath:     page.GitPath,
		Lock:        page.Lock,
	}

	res, err := r.db.Collection(collPage).InsertOne(ctx, doc)
	if err != nil {
		return "", goerr.Wrap(err, "failed to insert page")
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", goerr.New("unexpected inserted ID type", goerr.V("id", res.InsertedID))
	}

	return types.PageID(oid.Hex()), nil
}

func (r *docRepository) GetPage(ctx context.Context, id types.PageID) (*model.Page, error) {
	oid, err := toObjectID(string(id))
	if err != nil {
		return nil, err
	}

	var doc pageDoc
	if err := r.db.Collection(collPage).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, goerr.Wrap(types.ErrNotFound, "page not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to find page", goerr.V("id", id))
	}

	return doc.model(), nil
}

func (r *docRepository) ListPages(ctx context.Context, wsID types.WorkspaceID, folderPath string, limit int) ([]*model.Page, error) {
	filter := bson.M{"workspace_id": string(wsID)}
	if folderPath != "" {
		filter["folder_path"] = folderPath
	}

	return r.findPages(ctx, filter, limit)
}

func (r *docRepository) UpdatePage(ctx context.Context, id types.PageID, update *model.PageUpdate) error {
	oid, err := toObjectID(string(id))
	if err != nil {
		return err
	}

	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.FolderPath != nil {
		set["folder_path"] = *update.FolderPath
	}
	if update.Tags != nil {
		set["tags"] = *update.Tags
	}
	if update.GitPath != nil {
		set["git_path"] = *update.GitPath
	}
	if len(set) == 0 {
		return nil
	}

	res, err := r.db.Collection(collPage).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return goerr.Wrap(err, "failed to update page", goerr.V("id", id))
	}
	if res.MatchedCount == 0 {
		return goerr.Wrap(types.ErrNotFound, "page not found", goerr.V("id", id))
	}

	return nil
}

func (r *docRepository) DeletePage(ctx context.Context, id types.PageID) error {
	oid, err := toObjectID(string(id))
	if err != nil {
		return err
	}

	res, err := r.db.Collection(collPage).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return goerr.Wrap(err, "failed to delete page", goerr.V("id", id))
	}
	if res.DeletedCount == 0 {
		return goerr.Wrap(types.ErrNotFound, "page not found", goerr.V("id", id))
	}

	return nil
}

func (r *docRepository) SetPageLock(ctx context.Context, id types.PageID, lock *model.PageLock) error {
	oid, err := toObjectID(string(id))
	if err != nil {
		return err
	}

	var op bson.M
	if lock == nil {
		op = bson.M{"$unset": bson.M{"lock": ""}}
	} else {
		op = bson.M{"$set": bson.M{"lock": lock}}
	}

	res, err := r.db.Collection(collPage).UpdateOne(ctx, bson.M{"_id": oid}, op)
	if err != nil {
		return goerr.Wrap(err, "failed to update page lock", goerr.V("id", id))
	}
	if res.MatchedCount == 0 {
		return goerr.Wrap(types.ErrNotFound, "page not found", goerr.V("id", id))
	}

	return nil
}

func (r *docRepository) SearchPages(ctx context.Context, wsID types.WorkspaceID, pattern string, limit int) ([]*model.Page, error) {
	// Reject patterns the store could choke on before sending them over.
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidQuery, "cannot compile search pattern", goerr.V("pattern", pattern))
	}

	re := bson.Regex{Pattern: pattern, Options: "i"}
	filter := bson.M{
		"workspace_id": string(wsID),
		"$or": []bson.M{
			{"title": re},
			{"content": re},
			{"tags": re},
		},
	}

	return r.findPages(ctx, filter, limit)
}

func (r *docRepository) findPages(ctx context.Context, filter bson.M, limit int) ([]*model.Page, error) {
	cur, err := r.db.Collection(collPage).Find(ctx, filter,
		options.Find().SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find pages")
	}

	var docs []pageDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, goerr.Wrap(err, "failed to decode pages")
	}

	pages := make([]*model.Page, 0, len(docs))
	for i := range docs {
		pages = append(pages, docs[i].model())
	}

	return pages, nil
}
