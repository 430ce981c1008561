// Package artifacts loads the model, scaler and feature-list artifacts from
// a local directory or an Azure Blob container.
package artifacts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// Source opens artifacts by name.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// String describes where artifacts come from, for logs and banners.
	String() string
}

// DirSource reads artifacts from a local directory.
type DirSource struct {
	Dir string
}

func (s DirSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.Dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, filepath.Join(s.Dir, name))
		}
		return nil, err
	}
	return f, nil
}

func (s DirSource) String() string { return s.Dir }

// BlobSource reads artifacts from an Azure Blob Storage container, optionally
// under a prefix.
type BlobSource struct {
	client    *azblob.Client
	container string
	prefix    string
}

// NewBlobSource authenticates with the default Azure credential chain.
func NewBlobSource(accountURL, container, prefix string) (*BlobSource, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("creating azure credential: %w", err)
	}
	client, err := azblob.NewClient(accountURL, cred, &azblob.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{MaxRetries: 3},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating blob client for %s: %w", accountURL, err)
	}
	return NewBlobSourceFromClient(client, container, prefix), nil
}

// NewBlobSourceFromClient wraps an existing client.
func NewBlobSourceFromClient(client *azblob.Client, container, prefix string) *BlobSource {
	return &BlobSource{client: client, container: container, prefix: prefix}
}

func (s *BlobSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	blobName := s.blobName(name)
	resp, err := s.client.DownloadStream(ctx, s.container, blobName, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
			return nil, fmt.Errorf("%w: %s/%s", ErrArtifactNotFound, s.container, blobName)
		}
		return nil, fmt.Errorf("downloading %s/%s: %w", s.container, blobName, err)
	}
	return resp.Body, nil
}

func (s *BlobSource) String() string {
	return "azblob://" + path.Join(s.container, s.prefix)
}

func (s *BlobSource) blobName(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}
