package viewmodel

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/jasvilladarez/ello-go/internal/mvi"
	"github.com/jasvilladarez/ello-go/internal/service"
	"github.com/jasvilladarez/ello-go/models"
)

// MainIntent is a launch screen action.
//
//sumtype:decl
type MainIntent interface {
	isMainIntent()
}

// MainLoad obtains an access token valid at CurrentTime.
type MainLoad struct {
	CurrentTime time.Time
}

func (MainLoad) isMainIntent() {}

// MainResult is the outcome of a [MainIntent].
//
//sumtype:decl
type MainResult interface {
	isMainResult()
}

type (
	MainInProgress struct{}
	MainSuccess    struct{ Token models.Token }
	MainFailure    struct{ Err error }
)

func (MainInProgress) isMainResult() {}
func (MainSuccess) isMainResult()    {}
func (MainFailure) isMainResult()    {}

// MainViewState is what the launch screen renders.
//
//sumtype:decl
type MainViewState interface {
	isMainViewState()
}

type (
	// MainView is the resting state. IsSuccessful turns true once a token
	// was obtained, IsLoggedIn when that token belongs to a user.
	MainView struct {
		IsSuccessful bool
		IsLoggedIn   bool
	}
	MainLoadingView struct{}
	MainErrorView   struct{ Message string }
)

func (MainView) isMainViewState()        {}
func (MainLoadingView) isMainViewState() {}
func (MainErrorView) isMainViewState()   {}

// MainViewModel drives the launch screen.
type MainViewModel struct {
	*mvi.StateMachine[MainIntent, MainResult, MainViewState]
}

// NewMainViewModel creates the launch screen machine in MainView{}.
func NewMainViewModel(auth service.AuthInteractor, opts ...mvi.Option) *MainViewModel {
	var initial MainViewState = MainView{}
	return &MainViewModel{
		StateMachine: mvi.New(initial, mainDispatch(auth), reduceMain,
			append([]mvi.Option{mvi.WithName("main")}, opts...)...),
	}
}

func mainDispatch(auth service.AuthInteractor) mvi.Dispatch[MainIntent, MainResult] {
	return func(ctx context.Context, intent MainIntent) iter.Seq[MainResult] {
		switch in := intent.(type) {
		case MainLoad:
			return mvi.Apply(ctx,
				func(ctx context.Context) (models.Token, error) { return auth.FetchAccessToken(ctx, in.CurrentTime) },
				func(token models.Token) MainResult { return MainSuccess{Token: token} },
				func(err error) MainResult { return MainFailure{Err: err} },
				MainResult(MainInProgress{}),
			)
		default:
			panic(fmt.Sprintf("unexpected main intent %T", intent))
		}
	}
}

func reduceMain(prev MainViewState, result MainResult) MainViewState {
	switch r := result.(type) {
	case MainInProgress:
		return MainLoadingView{}
	case MainSuccess:
		return MainView{IsSuccessful: true, IsLoggedIn: r.Token.RefreshToken != ""}
	case MainFailure:
		return MainErrorView{Message: mvi.ErrorMessage(r.Err)}
	default:
		return prev
	}
}
