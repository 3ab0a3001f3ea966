package templates

// Script is served as /assets/erpui.js.  It only carries the behaviour that
// cannot happen on the server: reading and rewriting the URL hash, timers,
// showing the modal, and live hours and field validity updates.
const Script = `
(function () {
	"use strict";

	function restoreTab() {
		var hash = window.location.hash;
		if (!hash) {
			return;
		}
		var trigger = document.querySelector('[data-bs-target="' + hash + '"]');
		if (trigger && window.bootstrap) {
			new bootstrap.Tab(trigger).show();
		}
	}

	function trackTabs() {
		document.querySelectorAll('[data-bs-toggle="tab"]').forEach(function (el) {
			el.addEventListener("shown.bs.tab", function (ev) {
				var target = ev.target.getAttribute("data-bs-target");
				if (target) {
					history.replaceState(null, "", target);
				}
			});
		});
	}

	function handleAlerts() {
		document.querySelectorAll("[data-replace-url]").forEach(function (el) {
			history.replaceState(null, "", el.getAttribute("data-replace-url") + window.location.hash);
		});
		document.querySelectorAll("[data-dismiss-after]").forEach(function (el) {
			var delay = parseInt(el.getAttribute("data-dismiss-after"), 10);
			if (!(delay > 0)) {
				return;
			}
			setTimeout(function () {
				var node = document.getElementById(el.id);
				if (!node) {
					return;
				}
				if (window.bootstrap) {
					bootstrap.Alert.getOrCreateInstance(node).close();
				} else {
					node.remove();
				}
			}, delay);
		});
	}

	function scrollToInvalid() {
		var el = document.querySelector("[data-scroll-target]");
		if (el) {
			el.scrollIntoView({ behavior: "smooth", block: "center" });
			el.focus();
		}
	}

	function showConfirm() {
		var modal = document.getElementById("confirmActionModal");
		if (modal && window.bootstrap) {
			new bootstrap.Modal(modal).show();
		}
	}

	function toggleGroups() {
		document.querySelectorAll("[data-toggle-group]").forEach(function (ctrl) {
			var group = ctrl.getAttribute("data-toggle-group");
			var equals = ctrl.getAttribute("data-toggle-equals");
			var update = function () {
				document.querySelectorAll("." + group).forEach(function (el) {
					el.style.display = ctrl.value === equals ? "block" : "none";
				});
			};
			ctrl.addEventListener("change", update);
		});
	}

	function trackHours() {
		var display = document.getElementById("hours_worked_display");
		if (!display) {
			return;
		}
		var ids = ["entry_time", "exit_time", "lunch_duration"];
		var update = function () {
			var q = new URLSearchParams();
			ids.forEach(function (id) {
				var el = document.getElementById(id);
				q.set(id, el ? el.value : "");
			});
			// 204: nothing to show, keep the last value
			fetch("/hours?" + q.toString())
				.then(function (resp) { return resp.status === 200 ? resp.text() : null; })
				.then(function (text) {
					if (text !== null) {
						display.textContent = text;
					}
				});
		};
		ids.forEach(function (id) {
			var el = document.getElementById(id);
			if (el) {
				el.addEventListener("input", update);
				el.addEventListener("change", update);
			}
		});
	}

	function showValidity(el, res) {
		el.classList.remove("is-valid", "is-invalid");
		if (res["class"]) {
			el.classList.add(res["class"]);
		}
		var feedback = el.nextElementSibling;
		if (!feedback || !feedback.classList.contains("invalid-feedback")) {
			if (res.state !== "invalid") {
				return;
			}
			feedback = document.createElement("div");
			feedback.className = "invalid-feedback";
			el.insertAdjacentElement("afterend", feedback);
		}
		feedback.textContent = res.message;
	}

	function validateFields() {
		document.querySelectorAll("form[data-validate]").forEach(function (form) {
			var url = form.getAttribute("data-validate");
			var check = function (ev) {
				var el = ev.target;
				if (!el.name || el.disabled || el.type === "hidden") {
					return;
				}
				var q = new URLSearchParams(new FormData(form));
				q.set("_field", el.name);
				fetch(url + "?" + q.toString())
					.then(function (resp) { return resp.status === 200 ? resp.json() : null; })
					.then(function (res) {
						if (res) {
							showValidity(el, res);
						}
					});
			};
			form.querySelectorAll("input, select, textarea").forEach(function (el) {
				el.addEventListener("input", check);
				el.addEventListener("blur", check);
			});
		});
	}

	document.addEventListener("DOMContentLoaded", function () {
		restoreTab();
		trackTabs();
		handleAlerts();
		scrollToInvalid();
		showConfirm();
		toggleGroups();
		trackHours();
		validateFields();
	});
})();
`
