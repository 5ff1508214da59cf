package auth

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func Signup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	signupHandler(w, r)
}
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	loginHandler(w, r)
}
func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	logoutHandler(w, r)
}
func Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	meHandler(w, r)
}
func ForgotPassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	forgotPasswordHandler(w, r)
}
func ResetPassword(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	resetPasswordHandler(w, r, ps.ByName("resetToken"))
}
