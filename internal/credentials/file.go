package credentials

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/cryptoalert-cli/internal/constants"
	"github.com/oshokin/cryptoalert-cli/internal/logger"
)

// ErrEmptyPath indicates that a FileStore was created without a file path.
var ErrEmptyPath = errors.New("credentials file path cannot be empty")

// FileStore persists the token in a YAML file under TokenKey.
// Other keys already present in the file are preserved on write.
type FileStore struct {
	// mu serializes access from goroutines of this process.
	mu sync.RWMutex
	// path is the location of the credentials file.
	path string
}

// NewFileStore creates a store backed by the file at path.
// The file does not need to exist.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	return &FileStore{path: filepath.Clean(path)}, nil
}

// DefaultPath returns the credentials file location in the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	return filepath.Join(home, constants.AppDirName, constants.CredentialsFilename), nil
}

// Path returns the location of the credentials file.
func (s *FileStore) Path() string {
	return s.path
}

// Token reads the token from disk on every call.
func (s *FileStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	node, err := s.readDocument()
	if err != nil {
		logger.Debugf(context.Background(), "Credentials file %s is unreadable, treating as logged out: %v", s.path, err)

		return "", false
	}

	if node == nil {
		return "", false
	}

	valueNode := findTokenValue(node)
	if valueNode == nil || valueNode.Kind != yaml.ScalarNode || valueNode.ShortTag() == nullTag || valueNode.Value == "" {
		return "", false
	}

	return valueNode.Value, true
}

// SetToken writes token to disk. An empty token clears the store.
func (s *FileStore) SetToken(token string) error {
	if token == "" {
		return s.ClearToken()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// A broken file is replaced rather than blocking a fresh login.
	node, err := s.readDocument()
	if err != nil || node == nil {
		node = newDocument()
	}

	setTokenValue(node, token)

	return s.writeDocument(node)
}

// ClearToken removes the token from disk.
// The file itself is removed once nothing else is left in it.
func (s *FileStore) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	node, err := s.readDocument()
	if err != nil {
		// Unparseable content cannot hold a usable token; drop it.
		return s.removeFile()
	}

	if node == nil {
		return nil
	}

	if !removeTokenKey(node) {
		return nil
	}

	if len(node.Content[0].Content) == 0 {
		return s.removeFile()
	}

	return s.writeDocument(node)
}

// readDocument returns nil, nil when the file does not exist or is empty.
func (s *FileStore) readDocument() (*yaml.Node, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil //nolint:nilnil // Absence is not an error.
		}

		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var node yaml.Node
	if err = yaml.Unmarshal(content, &node); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}

	// An empty file decodes into a zero node.
	if len(node.Content) == 0 {
		return nil, nil //nolint:nilnil // Absence is not an error.
	}

	if node.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("failed to parse credentials file: %w", errNotMapping)
	}

	return &node, nil
}

// writeDocument replaces the file atomically so a concurrent reader sees either the old or the new token.
func (s *FileStore) writeDocument(node *yaml.Node) error {
	content, err := yaml.Marshal(node)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, constants.SecretFolderPermissions); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, ".credentials-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary credentials file: %w", err)
	}

	tempName := tempFile.Name()

	defer os.Remove(tempName) //nolint:errcheck // Fails harmlessly after a successful rename.

	if err = tempFile.Chmod(constants.SecretFilePermissions); err != nil {
		tempFile.Close() //nolint:errcheck,gosec // The chmod error is the one worth reporting.

		return fmt.Errorf("failed to set credentials file permissions: %w", err)
	}

	if _, err = tempFile.Write(content); err != nil {
		tempFile.Close() //nolint:errcheck,gosec // The write error is the one worth reporting.

		return fmt.Errorf("failed to write credentials file: %w", err)
	}

	if err = tempFile.Close(); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}

	if err = os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("failed to replace credentials file: %w", err)
	}

	return nil
}

func (s *FileStore) removeFile() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credentials file: %w", err)
	}

	return nil
}

var errNotMapping = errors.New("top-level value is not a mapping")

func newDocument() *yaml.Node {
	return &yaml.Node{
		Kind: yaml.DocumentNode,
		Content: []*yaml.Node{
			{Kind: yaml.MappingNode, Tag: "!!map"},
		},
	}
}

// findTokenValue returns the value node stored under TokenKey.
// nullTag is the resolved tag of a YAML null scalar (null, ~ or an empty value).
const nullTag = "!!null"

func findTokenValue(node *yaml.Node) *yaml.Node {
	mapNode := node.Content[0]

	// Key-value pairs are stored as alternating nodes.
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value == TokenKey {
			return mapNode.Content[i+1]
		}
	}

	return nil
}

func setTokenValue(node *yaml.Node, token string) {
	if valueNode := findTokenValue(node); valueNode != nil {
		valueNode.Kind = yaml.ScalarNode
		valueNode.Tag = "!!str"
		valueNode.Value = token
		valueNode.Content = nil
		valueNode.Style = yaml.DoubleQuotedStyle

		return
	}

	mapNode := node.Content[0]
	mapNode.Content = append(mapNode.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: TokenKey},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: token, Style: yaml.DoubleQuotedStyle},
	)
}

// removeTokenKey reports whether the key was present.
func removeTokenKey(node *yaml.Node) bool {
	mapNode := node.Content[0]

	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value == TokenKey {
			mapNode.Content = append(mapNode.Content[:i], mapNode.Content[i+2:]...)

			return true
		}
	}

	return false
}
