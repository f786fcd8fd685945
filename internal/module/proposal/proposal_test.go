package proposal

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
	(&ModuleProposal{}).Init()
}

func newUser(t *testing.T, npsn string, role int) model.User {
	u := model.User{
		SchoolName: "SDN " + npsn,
		NPSN:       npsn,
		Email:      npsn + "@sek.sch.id",
		Password:   "x",
		RoleID:     role,
	}
	require.NoError(t, database.DB.Create(&u).Error)
	return u
}

func asOwner(u model.User) jwt.Payload {
	return jwt.Payload{UserID: u.ID, RoleID: u.RoleID}
}

func idParam(id uint) gin.Param {
	return gin.Param{Key: "id", Value: strconv.FormatUint(uint64(id), 10)}
}

func createDraft(t *testing.T, owner model.User, title string) model.Proposal {
	resp := test.DoAuthRequest(t, CreateDraft, CreateReq{Title: title}, asOwner(owner))
	test.NoError(t, resp)

	var p model.Proposal
	require.NoError(t, database.DB.Where("owner_id = ? AND title = ?", owner.ID, title).First(&p).Error)
	return p
}

func TestCreateDraftStatusAndScoping(t *testing.T) {
	setup(t)
	alice := newUser(t, "11111111", model.RoleSchool)
	bob := newUser(t, "22222222", model.RoleSchool)

	p := createDraft(t, alice, "Renovasi Atap")
	require.Equal(t, model.StatusDraft, p.Status)

	resp := test.DoAuthRequest(t, List, nil, asOwner(alice))
	test.NoError(t, resp)
	rows, ok := resp.Data.([]any)
	require.True(t, ok)
	require.Len(t, rows, 1)

	// never visible in another account's list
	resp = test.DoAuthRequest(t, List, nil, asOwner(bob))
	test.NoError(t, resp)
	require.Empty(t, resp.Data)
}

func TestSubmitIsIdempotentOnPending(t *testing.T) {
	setup(t)
	alice := newUser(t, "11111111", model.RoleSchool)
	p := createDraft(t, alice, "Perpustakaan")

	resp := test.DoAuthRequest(t, Submit, nil, asOwner(alice), idParam(p.ID))
	test.NoError(t, resp)

	resp = test.DoAuthRequest(t, Submit, nil, asOwner(alice), idParam(p.ID))
	test.NoError(t, resp)

	require.NoError(t, database.DB.First(&p, p.ID).Error)
	require.Equal(t, model.StatusPending, p.Status)
}

func TestSubmitForeignOwnedIsNotFound(t *testing.T) {
	setup(t)
	alice := newUser(t, "11111111", model.RoleSchool)
	bob := newUser(t, "22222222", model.RoleSchool)
	p := createDraft(t, alice, "Sanitasi")

	resp := test.DoAuthRequest(t, Submit, nil, asOwner(bob), idParam(p.ID))
	test.ErrorEqual(t, response.ErrNotFound, resp)

	resp = test.DoAuthRequest(t, Submit, nil, asOwner(bob), idParam(99999))
	test.ErrorEqual(t, response.ErrNotFound, resp)
}

func TestSubmitAfterApprovalRefused(t *testing.T) {
	setup(t)
	alice := newUser(t, "11111111", model.RoleSchool)
	p := createDraft(t, alice, "Air Bersih")
	require.NoError(t, database.DB.Model(&p).Update("status", model.StatusApproved).Error)

	resp := test.DoAuthRequest(t, Submit, nil, asOwner(alice), idParam(p.ID))
	test.ErrorEqual(t, response.ErrStatusConflict, resp)
}

func TestUpdateRefusedOutsideDraft(t *testing.T) {
	setup(t)
	alice := newUser(t, "11111111", model.RoleSchool)
	p := createDraft(t, alice, "Listrik")
	require.NoError(t, database.DB.Model(&p).Update("status", model.StatusPending).Error)

	title := "Listrik Tenaga Surya"
	resp := test.DoAuthRequest(t, UpdateDraft, UpdateReq{Title: &title}, asOwner(alice), idParam(p.ID))
	test.ErrorEqual(t, response.ErrStatusConflict, resp)
}

func TestDeleteDraftOnly(t *testing.T) {
	setup(t)
	alice := newUser(t, "11111111", model.RoleSchool)
	p := createDraft(t, alice, "Pagar Sekolah")

	// once pending, deletion is refused
	require.NoError(t, database.DB.Model(&p).Update("status", model.StatusPending).Error)
	resp := test.DoAuthRequest(t, Delete, nil, asOwner(alice), idParam(p.ID))
	test.ErrorEqual(t, response.ErrStatusConflict, resp)

	require.NoError(t, database.DB.Model(&p).Update("status", model.StatusDraft).Error)
	resp = test.DoAuthRequest(t, Delete, nil, asOwner(alice), idParam(p.ID))
	test.NoError(t, resp)
}

func TestApproveRecordsDecision(t *testing.T) {
	setup(t)
	alice := newUser(t, "11111111", model.RoleSchool)
	admin := newUser(t, "00000000", model.RoleAdmin)
	p := createDraft(t, alice, "Ruang Kelas Baru")

	test.NoError(t, test.DoAuthRequest(t, Submit, nil, asOwner(alice), idParam(p.ID)))

	resp := test.DoAuthRequest(t, Approve, DecisionReq{Note: "lengkap"}, asOwner(admin), idParam(p.ID))
	test.NoError(t, resp)

	require.NoError(t, database.DB.First(&p, p.ID).Error)
	require.Equal(t, model.StatusApproved, p.Status)

	var decisions []model.Decision
	require.NoError(t, database.DB.Where("proposal_id = ?", p.ID).Find(&decisions).Error)
	require.Len(t, decisions, 1)
	require.Equal(t, admin.ID, decisions[0].AdminID)
	require.Equal(t, model.StatusPending, decisions[0].FromStatus)
	require.Equal(t, model.StatusApproved, decisions[0].ToStatus)
	require.Equal(t, "lengkap", decisions[0].Note)
}

func TestApproveFromDraftRefused(t *testing.T) {
	setup(t)
	alice := newUser(t, "11111111", model.RoleSchool)
	admin := newUser(t, "00000000", model.RoleAdmin)
	p := createDraft(t, alice, "Belum Diajukan")

	resp := test.DoAuthRequest(t, Approve, DecisionReq{}, asOwner(admin), idParam(p.ID))
	test.ErrorEqual(t, response.ErrStatusConflict, resp)
}

func TestReviseRejectedProposal(t *testing.T) {
	setup(t)
	alice := newUser(t, "11111111", model.RoleSchool)
	admin := newUser(t, "00000000", model.RoleAdmin)
	p := createDraft(t, alice, "Ditolak Dulu")

	test.NoError(t, test.DoAuthRequest(t, Submit, nil, asOwner(alice), idParam(p.ID)))
	test.NoError(t, test.DoAuthRequest(t, Reject, DecisionReq{Note: "kurang lampiran"}, asOwner(admin), idParam(p.ID)))

	resp := test.DoAuthRequest(t, Revise, nil, asOwner(alice), idParam(p.ID))
	test.NoError(t, resp)

	require.NoError(t, database.DB.First(&p, p.ID).Error)
	require.Equal(t, model.StatusDraft, p.Status)
}
