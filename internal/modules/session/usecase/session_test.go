package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	sessionout "instalike/internal/modules/session/adapter/out"
	"instalike/internal/modules/session/domain"
	sessiondto "instalike/internal/modules/session/dto"
	sessionin "instalike/internal/modules/session/port/in"
	"instalike/internal/modules/session/service"
	"instalike/internal/modules/session/usecase"
	apperrors "instalike/internal/platform/errors"
	"instalike/internal/platform/logging"
)

func newFileUsecase(t *testing.T) (sessionin.Usecase, string) {
	t.Helper()
	dir := t.TempDir()
	uc := usecase.NewInteractor(service.NewSessionService(sessionout.NewFileRecordStore(dir)), logging.Discard())
	return uc, filepath.Join(dir, domain.StorageKey+".json")
}

func TestLoginStoresDefaults(t *testing.T) {
	t.Parallel()
	uc, _ := newFileUsecase(t)
	ctx := context.Background()

	out, err := uc.Login(ctx, sessiondto.LoginInput{Username: "abc"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	want := sessiondto.SessionOutput{Username: "abc", AvatarURL: domain.DefaultAvatarURL, Bio: "О себе"}
	if out != want {
		t.Fatalf("expected %+v, got %+v", want, out)
	}
	got, ok := uc.Current(ctx).Get()
	if !ok || got != want {
		t.Fatalf("expected stored %+v, got %+v (present=%t)", want, got, ok)
	}
}

func TestLoginRejectsBlankUsername(t *testing.T) {
	t.Parallel()
	uc, path := newFileUsecase(t)
	ctx := context.Background()

	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := uc.Login(ctx, sessiondto.LoginInput{Username: name, AvatarURL: "x"}); !errors.Is(err, apperrors.ErrEmptyRequiredField) {
			t.Fatalf("expected empty field error for %q, got %v", name, err)
		}
	}
	if uc.Current(ctx).IsPresent() {
		t.Fatalf("blank login must not create a session")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("blank login must not write the record, stat err=%v", err)
	}
}

func TestSaveProfileOverwritesInPlace(t *testing.T) {
	t.Parallel()
	uc, _ := newFileUsecase(t)
	ctx := context.Background()

	if err := uc.Set(ctx, sessiondto.ProfileInput{Username: "a", AvatarURL: "x", Bio: "y"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	out, err := uc.SaveProfile(ctx, sessiondto.ProfileInput{Username: " b ", AvatarURL: "", Bio: " z "})
	if err != nil {
		t.Fatalf("save profile: %v", err)
	}
	want := sessiondto.SessionOutput{Username: "b", AvatarURL: domain.DefaultAvatarURL, Bio: "z"}
	if out != want {
		t.Fatalf("expected %+v, got %+v", want, out)
	}
	if got, _ := uc.Current(ctx).Get(); got != want {
		t.Fatalf("expected stored %+v, got %+v", want, got)
	}
	if _, err := uc.SaveProfile(ctx, sessiondto.ProfileInput{Username: " "}); !errors.Is(err, apperrors.ErrEmptyRequiredField) {
		t.Fatalf("expected empty field error, got %v", err)
	}
	if got, _ := uc.Current(ctx).Get(); got != want {
		t.Fatalf("rejected save must leave the record untouched, got %+v", got)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	t.Parallel()
	uc, _ := newFileUsecase(t)
	ctx := context.Background()

	if err := uc.Logout(ctx); err != nil {
		t.Fatalf("logout without session: %v", err)
	}
	if _, err := uc.Login(ctx, sessiondto.LoginInput{Username: "abc"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := uc.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := uc.Clear(ctx); err != nil {
		t.Fatalf("second clear: %v", err)
	}
	if uc.Current(ctx).IsPresent() {
		t.Fatalf("session must be absent after logout")
	}
}

func TestCurrentTreatsMalformedRecordAsAbsent(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"garbage":        "{not json",
		"wrong shape":    `["abc"]`,
		"blank username": `{"username":"  ","avatarUrl":"x","bio":""}`,
		"null":           `null`,
	}
	for name, raw := range cases {
		uc, path := newFileUsecase(t)
		if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
			t.Fatalf("%s: write record: %v", name, err)
		}
		if uc.Current(context.Background()).IsPresent() {
			t.Fatalf("%s: malformed record must read as absent", name)
		}
	}
}

func TestSQLiteBackendRoundTrip(t *testing.T) {
	t.Parallel()
	store, err := sessionout.NewSQLiteRecordStore(filepath.Join(t.TempDir(), "state", "instalike.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	uc := usecase.NewInteractor(service.NewSessionService(store), logging.Discard())
	ctx := context.Background()

	if uc.Current(ctx).IsPresent() {
		t.Fatalf("fresh store must have no session")
	}
	if _, err := uc.Login(ctx, sessiondto.LoginInput{Username: "abc", AvatarURL: "https://img"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := uc.SaveProfile(ctx, sessiondto.ProfileInput{Username: "abd", Bio: "bio"}); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	got, ok := uc.Current(ctx).Get()
	if !ok || got.Username != "abd" || got.AvatarURL != domain.DefaultAvatarURL || got.Bio != "bio" {
		t.Fatalf("unexpected sqlite session %+v (present=%t)", got, ok)
	}
	if err := uc.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if uc.Current(ctx).IsPresent() {
		t.Fatalf("session must be absent after logout")
	}
}

func TestCurrentNormalizesStoredRecord(t *testing.T) {
	t.Parallel()
	cases := map[string]struct {
		raw  string
		want sessiondto.SessionOutput
	}{
		"padded without avatar": {
			raw:  `{"username":"  abc  ","bio":" x "}`,
			want: sessiondto.SessionOutput{Username: "abc", AvatarURL: domain.DefaultAvatarURL, Bio: "x"},
		},
		"blank avatar": {
			raw:  `{"username":"abc","avatarUrl":"   "}`,
			want: sessiondto.SessionOutput{Username: "abc", AvatarURL: domain.DefaultAvatarURL},
		},
	}
	for name, tc := range cases {
		uc, path := newFileUsecase(t)
		if err := os.WriteFile(path, []byte(tc.raw), 0o600); err != nil {
			t.Fatalf("%s: write record: %v", name, err)
		}
		got, ok := uc.Current(context.Background()).Get()
		if !ok || got != tc.want {
			t.Fatalf("%s: expected %+v, got %+v (present=%t)", name, tc.want, got, ok)
		}
	}
}
