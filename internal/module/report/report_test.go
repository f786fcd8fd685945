package report

import (
	"strconv"
	"testing"

	"sahabat3t-backend/internal/global/database"
	"sahabat3t-backend/internal/global/jwt"
	"sahabat3t-backend/internal/global/response"
	"sahabat3t-backend/internal/model"
	"sahabat3t-backend/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	test.SetupDB(t)
	(&ModuleReport{}).Init()
}

func newUser(t *testing.T, npsn string) model.User {
	u := model.User{
		SchoolName: "SDN " + npsn,
		NPSN:       npsn,
		Email:      npsn + "@sek.sch.id",
		Password:   "x",
		RoleID:     model.RoleSchool,
	}
	require.NoError(t, database.DB.Create(&u).Error)
	return u
}

func newProposal(t *testing.T, owner model.User, status string) model.Proposal {
	p := model.Proposal{
		OwnerID: owner.ID,
		Status:  status,
		Title:   "Proposal " + status,
	}
	require.NoError(t, database.DB.Create(&p).Error)
	return p
}

func asOwner(u model.User) jwt.Payload {
	return jwt.Payload{UserID: u.ID, RoleID: u.RoleID}
}

func validCreate(proposalID uint) CreateReq {
	return CreateReq{
		ProposalID:      proposalID,
		Title:           "Pembelian Buku",
		TransactionDate: 1735689600000,
		Recipient:       "Toko Buku Cahaya",
		Amount:          500000,
		Status:          model.ReportSubmitted,
	}
}

func TestCreateSubmittedAgainstApproved(t *testing.T) {
	setup(t)
	alice := newUser(t, "11111111")
	p := newProposal(t, alice, model.StatusApproved)

	resp := test.DoAuthRequest(t, Create, validCreate(p.ID), asOwner(alice))
	test.NoError(t, resp)

	var r model.Report
	require.NoError(t, database.DB.Where("proposal_id = ?", p.ID).First(&r).Error)
	require.Equal(t, model.ReportSubmitted, r.Status)
	require.Equal(t, int64(500000), r.Amount)
}

func TestCreateSubmittedAgainstPendingRefused(t *testing.T) {
	setup(t)
	alice := newUser(t, "11111111")
	p := newProposal(t, alice, model.StatusPending)

	resp := test.DoAuthRequest(t, Create, validCreate(p.ID), asOwner(alice))
	test.ErrorEqual(t, response.ErrStatusConflict, resp)
}

func TestCreateDraftAgainstAnyOwnedProposal(t *testing.T) {
	setup(t)
	alice := newUser(t, "11111111")
	p := newProposal(t, alice, model.StatusPending)

	req := validCreate(p.ID)
	req.Status = model.ReportDraft
	test.NoError(t, test.DoAuthRequest(t, Create, req, asOwner(alice)))
}

func TestCreateMissingProposal(t *testing.T) {
	setup(t)
	alice := newUser(t, "11111111")

	resp := test.DoAuthRequest(t, Create, validCreate(99999), asOwner(alice))
	test.ErrorEqual(t, response.ErrNotFound, resp)
}

func TestCreateForeignProposalIsNotFound(t *testing.T) {
	setup(t)
	alice := newUser(t, "11111111")
	bob := newUser(t, "22222222")
	p := newProposal(t, alice, model.StatusApproved)

	resp := test.DoAuthRequest(t, Create, validCreate(p.ID), asOwner(bob))
	test.ErrorEqual(t, response.ErrNotFound, resp)
}

func TestCreateNegativeAmountRefused(t *testing.T) {
	setup(t)
	alice := newUser(t, "11111111")
	p := newProposal(t, alice, model.StatusApproved)

	req := validCreate(p.ID)
	req.Amount = -1
	resp := test.DoAuthRequest(t, Create, req, asOwner(alice))
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestDeleteDraftOnlyAndOwnedOnly(t *testing.T) {
	setup(t)
	alice := newUser(t, "11111111")
	bob := newUser(t, "22222222")
	p := newProposal(t, alice, model.StatusApproved)

	r := model.Report{
		OwnerID:         alice.ID,
		ProposalID:      p.ID,
		Title:           "Draft Laporan",
		TransactionDate: 1,
		Amount:          1000,
		Status:          model.ReportDraft,
	}
	require.NoError(t, database.DB.Create(&r).Error)

	param := gin.Param{Key: "id", Value: strconv.FormatUint(uint64(r.ID), 10)}

	// foreign owner reads as missing
	resp := test.DoAuthRequest(t, Delete, nil, asOwner(bob), param)
	test.ErrorEqual(t, response.ErrNotFound, resp)

	// submitted reports are immutable
	require.NoError(t, database.DB.Model(&r).Update("status", model.ReportSubmitted).Error)
	resp = test.DoAuthRequest(t, Delete, nil, asOwner(alice), param)
	test.ErrorEqual(t, response.ErrStatusConflict, resp)

	require.NoError(t, database.DB.Model(&r).Update("status", model.ReportDraft).Error)
	test.NoError(t, test.DoAuthRequest(t, Delete, nil, asOwner(alice), param))
}
