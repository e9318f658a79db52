package paramstore

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/require"
)

// fakeAPI is a simple fake implementing ssmAPI for tests.
type fakeAPI struct {
	getOut *ssm.GetParameterOutput
	getErr error
	lastIn *ssm.GetParameterInput
}

func (f *fakeAPI) GetParameter(_ context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	f.lastIn = in
	return f.getOut, f.getErr
}

func strPtr(s string) *string { return &s }

func outputWith(value *string) *ssm.GetParameterOutput {
	return &ssm.GetParameterOutput{Parameter: &types.Parameter{Name: strPtr("p"), Value: value}}
}

func TestGetParameter_HappyPath(t *testing.T) {
	api := &fakeAPI{getOut: outputWith(strPtr("AIza-123"))}
	client, err := New(api)
	require.NoError(t, err)

	v, err := client.GetParameter(context.Background(), " /monastery-guide/gemini-api-key ")
	require.NoError(t, err)
	require.Equal(t, "AIza-123", v)
	require.Equal(t, "/monastery-guide/gemini-api-key", *api.lastIn.Name)
	require.True(t, *api.lastIn.WithDecryption)
}

func TestGetParameter_MissingValue(t *testing.T) {
	client, err := New(&fakeAPI{getOut: outputWith(nil)})
	require.NoError(t, err)
	_, err = client.GetParameter(context.Background(), "p")
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing value")
}

func TestGetParameter_APIError(t *testing.T) {
	client, err := New(&fakeAPI{getErr: errors.New("boom")})
	require.NoError(t, err)
	_, err = client.GetParameter(context.Background(), "p")
	require.ErrorContains(t, err, "boom")
}

func TestGetParameter_ClientNotInitialized(t *testing.T) {
	_, err := (&Client{}).GetParameter(context.Background(), "p")
	require.ErrorContains(t, err, "not initialized")
}

func TestGetParameter_EmptyName(t *testing.T) {
	client, err := New(&fakeAPI{})
	require.NoError(t, err)
	_, err = client.GetParameter(context.Background(), "  ")
	require.ErrorContains(t, err, "required")
}

func TestNew_NilAPI(t *testing.T) {
	_, err := New(nil)
	require.ErrorContains(t, err, "must not be nil")
}

type fakeGetter struct {
	val string
	err error
}

func (f fakeGetter) GetParameter(context.Context, string) (string, error) {
	return f.val, f.err
}

func TestToken(t *testing.T) {
	cases := []struct {
		name    string
		getter  Getter
		want    string
		wantErr string
	}{
		{name: "json payload", getter: fakeGetter{val: `{"token":"sk-json"}`}, want: "sk-json"},
		{name: "plain value", getter: fakeGetter{val: "  AIza-plain \n"}, want: "AIza-plain"},
		{name: "json without token", getter: fakeGetter{val: `{"other":"x"}`}, wantErr: "is empty"},
		{name: "malformed json", getter: fakeGetter{val: `{"broken`}, wantErr: "unmarshal"},
		{name: "blank", getter: fakeGetter{val: "   "}, wantErr: "is empty"},
		{name: "getter error", getter: fakeGetter{err: errors.New("ssm unavailable")}, wantErr: "ssm unavailable"},
		{name: "nil getter", getter: nil, wantErr: "nil"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Token(context.Background(), tc.getter, "/p/token")
			if tc.wantErr != "" {
				require.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
