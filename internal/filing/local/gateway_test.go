package local

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstbook/internal/domain"
	"gstbook/mocks"
)

var arnPattern = regexp.MustCompile(`^AB\d{14}$`)

func testDoc() *domain.ReturnDocument {
	return domain.NewReturnDocument("29ABCDE1234F1Z5", "Acme Traders", "Acme", domain.ReturnPeriod{Month: 4, Year: 2025})
}

func TestFileIssuesWellFormedARN(t *testing.T) {
	repo := new(mocks.MockReturnRepo)
	repo.On("ARNExists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)

	g := NewGateway(repo, 5)
	res, err := g.File(context.Background(), testDoc())
	require.NoError(t, err)

	assert.Regexp(t, arnPattern, res.ARN)
	assert.Contains(t, res.ARN, res.FiledAt.Format("20060102"))
	assert.False(t, res.FiledAt.IsZero())
}

func TestFileRetriesOnCollision(t *testing.T) {
	repo := new(mocks.MockReturnRepo)
	repo.On("ARNExists", mock.Anything, mock.AnythingOfType("string")).Return(true, nil).Once()
	repo.On("ARNExists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil).Once()

	g := NewGateway(repo, 5)
	res, err := g.File(context.Background(), testDoc())
	require.NoError(t, err)

	assert.Regexp(t, arnPattern, res.ARN)
	repo.AssertNumberOfCalls(t, "ARNExists", 2)
}

func TestFileGivesUpAfterMaxRetries(t *testing.T) {
	repo := new(mocks.MockReturnRepo)
	repo.On("ARNExists", mock.Anything, mock.AnythingOfType("string")).Return(true, nil)

	g := NewGateway(repo, 3)
	_, err := g.File(context.Background(), testDoc())

	assert.ErrorIs(t, err, domain.ErrFilingFailed)
	repo.AssertNumberOfCalls(t, "ARNExists", 3)
}
